package publisher_test

import (
	"context"
	"errors"
	"math/big"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/hyago/internal/engine"
	"github.com/vk/hyago/internal/publisher"
	"github.com/vk/hyago/internal/registry"
	"github.com/vk/hyago/modules/arith"
	"github.com/vk/hyago/modules/hash"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// fakeEngine records every install and can be told to reject one key.
type fakeEngine struct {
	known    map[string]function.Function
	installs []string
	rejectOn string
	rejectBy error
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{known: make(map[string]function.Function)}
}

func (f *fakeEngine) HasResolver(key string) bool {
	_, ok := f.known[key]
	return ok
}

func (f *fakeEngine) RegisterResolver(key string, fn function.Function) error {
	if key == f.rejectOn {
		return f.rejectBy
	}
	f.known[key] = fn
	f.installs = append(f.installs, key)
	return nil
}

func addTwo(v int) int { return v + 2 }

func TestPublish_InstallsEveryEntry(t *testing.T) {
	// --- Arrange ---
	reg := registry.New()
	require.NoError(t, reg.Register("ns.b", addTwo))
	require.NoError(t, reg.Register("ns.a", addTwo))
	target := newFakeEngine()

	// --- Act ---
	err := publisher.Publish(context.Background(), reg, target)

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, []string{"ns.a", "ns.b"}, target.installs)
}

func TestPublish_IsIdempotent(t *testing.T) {
	reg := registry.New()
	require.NoError(t, reg.Register("ns.a", addTwo))
	target := newFakeEngine()

	require.NoError(t, publisher.Publish(context.Background(), reg, target))
	require.NoError(t, publisher.Publish(context.Background(), reg, target))

	require.Equal(t, []string{"ns.a"}, target.installs)
}

func TestPublish_SkipsKeysTheEngineAlreadyKnows(t *testing.T) {
	reg := registry.New()
	require.NoError(t, reg.Register("ns.a", addTwo))
	require.NoError(t, reg.Register("ns.b", addTwo))
	target := newFakeEngine()
	target.known["ns.a"] = function.Function{}

	require.NoError(t, publisher.Publish(context.Background(), reg, target))

	require.Equal(t, []string{"ns.b"}, target.installs)
}

func TestPublish_PicksUpLaterRegistrations(t *testing.T) {
	reg := registry.New()
	require.NoError(t, reg.Register("ns.a", addTwo))
	target := newFakeEngine()
	require.NoError(t, publisher.Publish(context.Background(), reg, target))

	require.NoError(t, reg.Register("ns.b", addTwo))
	require.NoError(t, publisher.Publish(context.Background(), reg, target))

	require.Equal(t, []string{"ns.a", "ns.b"}, target.installs)
}

func TestPublish_EngineErrorIsReturnedUnchanged(t *testing.T) {
	// --- Arrange ---
	reg := registry.New()
	for _, k := range []string{"ns.a", "ns.b", "ns.c"} {
		require.NoError(t, reg.Register(k, addTwo))
	}
	rejection := errors.New("engine says no")
	target := newFakeEngine()
	target.rejectOn = "ns.b"
	target.rejectBy = rejection

	// --- Act ---
	err := publisher.Publish(context.Background(), reg, target)

	// --- Assert ---
	require.Same(t, rejection, err)
	require.Equal(t, []string{"ns.a"}, target.installs, "earlier installs stay, later keys are not attempted")
}

func TestPublish_EmptyRegistry(t *testing.T) {
	target := newFakeEngine()
	require.NoError(t, publisher.Publish(context.Background(), registry.New(), target))
	require.Empty(t, target.installs)
}

func TestPublish_InvalidKeyRejectedByEngine(t *testing.T) {
	reg := registry.New()
	require.NoError(t, reg.Register("ns.a", addTwo))
	require.NoError(t, reg.Register("ns.not valid", addTwo))
	eng := engine.New()

	err := publisher.Publish(context.Background(), reg, eng)

	var invalid *engine.InvalidKeyError
	require.True(t, errors.As(err, &invalid))
	require.True(t, eng.HasResolver("ns.a"))
}

func TestPublish_EndToEnd(t *testing.T) {
	// --- Arrange ---
	reg := registry.New()
	require.NoError(t, reg.RegisterModules(&arith.Module{Namespace: "ns"}, &hash.Module{Namespace: "ns"}))
	eng := engine.New()

	// --- Act ---
	require.NoError(t, publisher.Publish(context.Background(), reg, eng))

	// --- Assert ---
	sum, err := eng.EvaluateExpression("ns::add(1, 4)")
	require.NoError(t, err)
	require.Equal(t, 0, sum.AsBigFloat().Cmp(big.NewFloat(5)))

	digest, err := eng.EvaluateExpression(`ns::sha256("blabla")`)
	require.NoError(t, err)
	require.Regexp(t, regexp.MustCompile(`^[0-9a-f]{64}$`), digest.AsString())

	ceil, err := eng.EvaluateExpression("ns::ceildiv(11, 4)")
	require.NoError(t, err)
	require.Equal(t, 0, ceil.AsBigFloat().Cmp(big.NewFloat(3)))

	quot, err := eng.EvaluateExpression("ns::truediv(11, 4)")
	require.NoError(t, err)
	require.Equal(t, cty.Number, quot.Type())
	require.Equal(t, 0, quot.AsBigFloat().Cmp(big.NewFloat(2.75)))
}
