// Package runner executes compiled escrow contracts against a simulated
// ledger. It instantiates a wazero runtime, exposes the host_lib functions
// backed by a hostsim.Env and calls the contract's finish export.
package runner

import (
	"context"

	"github.com/tetratelabs/wazero"
	"go.uber.org/zap"

	"github.com/xrpl-wasm/xrpl-wasm-go/errors"
	"github.com/xrpl-wasm/xrpl-wasm-go/hostsim"
)

// EntryPoint is the export every finish function contract must provide.
const EntryPoint = "finish"

// Runner owns a wazero runtime with the host_lib module registered.
type Runner struct {
	runtime wazero.Runtime
	env     *hostsim.Env
	logger  *zap.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the runner's logger.
func WithLogger(l *zap.Logger) Option {
	return func(r *Runner) { r.logger = l }
}

// New builds a Runner over env. Close must be called to release the
// runtime.
func New(ctx context.Context, env *hostsim.Env, opts ...Option) (*Runner, error) {
	r := &Runner{env: env, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}

	cfg := wazero.NewRuntimeConfig().WithCloseOnContextDone(true)
	r.runtime = wazero.NewRuntimeWithConfig(ctx, cfg)

	if err := registerHostModule(ctx, r.runtime, env); err != nil {
		_ = r.runtime.Close(ctx)
		return nil, err
	}
	if err := registerWASIStubs(ctx, r.runtime); err != nil {
		_ = r.runtime.Close(ctx)
		return nil, err
	}
	return r, nil
}

// Close releases the runtime and all modules instantiated in it.
func (r *Runner) Close(ctx context.Context) error {
	return r.runtime.Close(ctx)
}

// Execute compiles and instantiates the contract, runs its finish export
// and returns the verdict. Only a verdict of exactly 1 approves the
// finish; every other value, error codes included, rejects it.
func (r *Runner) Execute(ctx context.Context, wasmBytes []byte) (int32, error) {
	compiled, err := r.runtime.CompileModule(ctx, wasmBytes)
	if err != nil {
		return 0, errors.Load("compile contract", err)
	}
	defer compiled.Close(ctx)

	var missing []string
	for _, f := range compiled.ImportedFunctions() {
		mod, name, _ := f.Import()
		if !importProvided(mod, name) {
			missing = append(missing, mod+"#"+name)
		}
	}
	if len(missing) > 0 {
		return 0, errors.NewMissingImportsError(missing)
	}

	// Contracts are reactors: no _start, an optional _initialize.
	modCfg := wazero.NewModuleConfig().
		WithName("contract").
		WithStartFunctions()
	mod, err := r.runtime.InstantiateModule(ctx, compiled, modCfg)
	if err != nil {
		return 0, errors.Instantiation(err)
	}
	defer mod.Close(ctx)

	if init := mod.ExportedFunction("_initialize"); init != nil {
		if _, err := init.Call(ctx); err != nil {
			return 0, errors.Trap(err)
		}
	}

	fn := mod.ExportedFunction(EntryPoint)
	if fn == nil {
		return 0, errors.NotFound(errors.PhaseRun, "export", EntryPoint)
	}

	results, err := fn.Call(ctx)
	if err != nil {
		return 0, errors.Trap(err)
	}
	if len(results) != 1 {
		return 0, errors.InvalidInput(errors.PhaseRun, "finish must return exactly one i32")
	}

	verdict := int32(uint32(results[0]))
	r.logger.Info("contract finished",
		zap.Int32("verdict", verdict),
		zap.Bool("approved", verdict == 1))
	return verdict, nil
}

// Env returns the simulated host environment backing this runner.
func (r *Runner) Env() *hostsim.Env { return r.env }
