package ffx

import (
	"reflect"
	"runtime"
	"sync"
	"testing"
	"time"

	"dirpx.dev/ffx/apis"
)

// ---------------------- Helpers ----------------------

func itoa(i int) string { return fmtInt(i) }

func fmtInt(i int) string {
	if i == 0 {
		return "0"
	}
	buf := [20]byte{}
	pos := len(buf)
	n := i
	for n > 0 {
		pos--
		buf[pos] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[pos:])
}
func boolToChar(b bool) string {
	if b {
		return "T"
	}
	return "F"
}
func intToChar(i int) string { return fmtInt(i) }

// Reset to a clean snapshot using our test builder.
// This fully replaces builder, config, ext and rebuilds storage/resolver.
// Pins are reset (psto=false, pres=false) because we pass nil sto/res.
func resetWithBuilder(tb testing.TB, b apis.Builder, cfg apis.Config, ext any) {
	tb.Helper()
	SetAll(&cfg, ext, nil, nil, b)
}

// ---------------------- Test doubles (mocks) ----------------------

type mockStorage struct {
	id   string
	mu   sync.Mutex
	data map[apis.Key]any
}

func newMockStorage(id string) *mockStorage {
	return &mockStorage{id: id, data: make(map[apis.Key]any)}
}

func (m *mockStorage) Cell(k apis.Key, alloc func() any) any {
	m.mu.Lock()
	defer m.mu.Unlock()
	if v, ok := m.data[k]; ok {
		return v
	}
	if alloc == nil {
		return nil
	}
	v := alloc()
	if v != nil {
		m.data[k] = v
	}
	return v
}

func (m *mockStorage) Lookup(k apis.Key) (any, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[k]
	return v, ok
}

func (m *mockStorage) Keys() []apis.Key {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []apis.Key
	for k := range m.data {
		out = append(out, k)
	}
	return out
}

func (m *mockStorage) Len() int { m.mu.Lock(); defer m.mu.Unlock(); return len(m.data) }

func (m *mockStorage) Range(fn func(k apis.Key, v any) bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, v := range m.data {
		if !fn(k, v) {
			return
		}
	}
}

type mockResolver struct {
	id       string
	resolveC int
	mu       sync.Mutex
}

func (r *mockResolver) Resolve(v any, cfg apis.Config) apis.TypeID {
	r.mu.Lock()
	r.resolveC++
	r.mu.Unlock()
	return apis.TypeID(r.id + ":" + boolToChar(cfg.AllowReplace) + ":" + boolToChar(cfg.FoldIDs) + ":" + intToChar(cfg.MaxUnwrap))
}

func (r *mockResolver) ResolveType(t reflect.Type, cfg apis.Config) apis.TypeID {
	return r.Resolve(nil, cfg) + ":" + apis.TypeID(t.String())
}

type mockBuilder struct {
	mu             sync.Mutex
	lastCfg        apis.Config
	lastExt        any
	lastPrevStoID  string
	lastPrevResID  string
	stoCounter     int
	resCounter     int
	returnFixedSto apis.Storage  // optional override
	returnFixedRes apis.Resolver // optional override
}

func (b *mockBuilder) BuildStorage(cfg apis.Config, prev apis.Storage, ext any) apis.Storage {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lastCfg, b.lastExt = cfg, ext
	if prev != nil {
		if ms, ok := prev.(*mockStorage); ok {
			b.lastPrevStoID = ms.id
		}
	}
	if b.returnFixedSto != nil {
		return b.returnFixedSto
	}
	b.stoCounter++
	return newMockStorage("sto#" + itoa(b.stoCounter))
}

func (b *mockBuilder) BuildResolver(cfg apis.Config, sto apis.Storage, prev apis.Resolver, ext any) apis.Resolver {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lastCfg, b.lastExt = cfg, ext
	if prev != nil {
		if mr, ok := prev.(*mockResolver); ok {
			b.lastPrevResID = mr.id
		}
	}
	if b.returnFixedRes != nil {
		return b.returnFixedRes
	}
	b.resCounter++
	return &mockResolver{id: "res#" + itoa(b.resCounter)}
}

// ---------------------- Tests ----------------------

func TestSetConfig_Rebuilds_Unpinned(t *testing.T) {
	b := &mockBuilder{}
	resetWithBuilder(t, b, apis.Config{MaxUnwrap: 8}, nil)

	// snapshot 1
	s1Sto := Storage()
	s1Res := Resolver()

	// change cfg -> both should rebuild (not pinned)
	SetConfig(apis.Config{AllowReplace: true, MaxUnwrap: 4})

	s2Sto := Storage()
	s2Res := Resolver()

	if s1Sto == s2Sto {
		t.Fatalf("storage was not rebuilt on SetConfig (unpinned)")
	}
	if s1Res == s2Res {
		t.Fatalf("resolver was not rebuilt on SetConfig (unpinned)")
	}

	b.mu.Lock()
	gotCfg := b.lastCfg
	b.mu.Unlock()
	if gotCfg.MaxUnwrap != 4 || !gotCfg.AllowReplace || gotCfg.FoldIDs {
		t.Fatalf("builder received wrong cfg: %+v", gotCfg)
	}
}

func TestSetStorage_PinsStorage_and_RebuildsResolverIfUnpinned(t *testing.T) {
	b := &mockBuilder{}
	resetWithBuilder(t, b, apis.Config{MaxUnwrap: 8}, nil)

	customSto := newMockStorage("custom")
	SetStorage(customSto)

	beforeRes := Resolver()
	SetConfig(apis.Config{AllowReplace: true, MaxUnwrap: 8})

	afterSto := Storage()
	afterRes := Resolver()

	if afterSto != customSto {
		t.Fatalf("pinned storage was rebuilt unexpectedly")
	}
	if afterRes == beforeRes {
		t.Fatalf("resolver was not rebuilt when cfg changed and res not pinned")
	}
}

func TestSetResolver_PinsResolver(t *testing.T) {
	b := &mockBuilder{}
	resetWithBuilder(t, b, apis.Config{MaxUnwrap: 8}, nil)

	// Pin resolver
	customRes := &mockResolver{id: "custom"}
	SetResolver(customRes)

	// Grab current storage pointer (should be from builder b)
	stoBefore := Storage()

	// Change cfg -> expect: storage rebuilt (not pinned), resolver unchanged (pinned)
	SetConfig(apis.Config{AllowReplace: true, MaxUnwrap: 8})

	stoAfter := Storage()
	resAfter := Resolver()

	if resAfter != customRes {
		t.Fatalf("pinned resolver was rebuilt unexpectedly")
	}
	if stoAfter == stoBefore {
		t.Fatalf("storage was not rebuilt on SetConfig when resolver is pinned")
	}
}

func TestSetBuilder_Rebuilds_Only_Unpinned(t *testing.T) {
	// Start with builder A
	a := &mockBuilder{}
	resetWithBuilder(t, a, apis.Config{MaxUnwrap: 8}, nil)

	// Pin resolver, leave storage unpinned
	SetResolver(&mockResolver{id: "pinned"})
	stoBefore := Storage()
	resBefore := Resolver()

	// Swap to builder B (rebuilds unpinned layers immediately)
	b := &mockBuilder{}
	SetBuilder(b)

	// Trigger another rebuild by changing config -> expect: storage rebuilt
	// (unpinned), resolver unchanged (pinned)
	SetConfig(apis.Config{AllowReplace: true, FoldIDs: true, MaxUnwrap: 6})

	stoAfter := Storage()
	resAfter := Resolver()

	if stoAfter == stoBefore {
		t.Fatalf("storage did not rebuild after SetBuilder + SetConfig (unpinned)")
	}
	if resAfter != resBefore {
		t.Fatalf("pinned resolver was rebuilt after SetBuilder + SetConfig")
	}
}

func TestSetExt_Rebuilds_Unpinned_and_PassesValue(t *testing.T) {
	// Ensure snapshot uses our mock builder
	b := &mockBuilder{}
	resetWithBuilder(t, b, apis.Config{MaxUnwrap: 8}, nil)

	// Change ext -> should rebuild unpinned layers via current builder (b) and pass ext
	type extCfg struct{ X int }
	SetExt(extCfg{X: 42})

	b.mu.Lock()
	got := b.lastExt
	b.mu.Unlock()
	ec, ok := got.(extCfg)
	if !ok || ec.X != 42 {
		t.Fatalf("builder did not receive ext properly: %#v", got)
	}

	// Pin both and ensure no rebuild on SetExt
	SetStorage(Storage())
	SetResolver(Resolver())
	sCntBefore, rCntBefore := func() (int, int) {
		b.mu.Lock()
		defer b.mu.Unlock()
		return b.stoCounter, b.resCounter
	}()
	SetExt(extCfg{X: 7})
	sCntAfter, rCntAfter := func() (int, int) {
		b.mu.Lock()
		defer b.mu.Unlock()
		return b.stoCounter, b.resCounter
	}()
	if sCntAfter != sCntBefore || rCntAfter != rCntBefore {
		t.Fatalf("SetExt should not rebuild when both layers are pinned")
	}
}

func TestUnpin_Allows_Rebuild_After(t *testing.T) {
	b := &mockBuilder{}
	resetWithBuilder(t, b, apis.Config{MaxUnwrap: 8}, nil)

	SetStorage(Storage())
	SetResolver(Resolver())

	sto1 := Storage()
	res1 := Resolver()
	SetConfig(apis.Config{AllowReplace: true, MaxUnwrap: 4})
	if Storage() != sto1 || Resolver() != res1 {
		t.Fatalf("pinned layers should not rebuild on SetConfig")
	}

	UnpinStorage()
	UnpinResolver()
	SetConfig(apis.Config{FoldIDs: true, MaxUnwrap: 6})
	if Storage() == sto1 {
		t.Fatalf("storage should rebuild after UnpinStorage+SetConfig")
	}
	if Resolver() == res1 {
		t.Fatalf("resolver should rebuild after UnpinResolver+SetConfig")
	}
}

func TestTypeIDOf_Concurrent_With_SetConfig(t *testing.T) {
	b := &mockBuilder{}
	resetWithBuilder(t, b, apis.Config{MaxUnwrap: 8}, nil)

	type token struct{}
	done := make(chan struct{})
	var wg sync.WaitGroup

	readers := runtime.GOMAXPROCS(0) * 4
	wg.Add(readers)
	for i := 0; i < readers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				_ = TypeIDOf(token{})
				_ = TypeIDOfType(reflect.TypeOf(token{}))
			}
		}()
	}

	go func() {
		for i := 0; i < 20; i++ {
			SetConfig(apis.Config{
				AllowReplace: i%2 == 0,
				FoldIDs:      i%3 == 0,
				MaxUnwrap:    4 + (i % 5),
			})
			time.Sleep(time.Millisecond)
		}
		close(done)
	}()

	wg.Wait()
	<-done
}
