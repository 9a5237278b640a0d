// Package reflect reconstructs shader-interface metadata — entry points,
// their inputs/outputs, descriptor bindings, push constants, and
// specialization constants — directly from a compiled SPIR-V binary,
// without relying on the source shading language or a driver.
package reflect

// EntryPoint is one projected shader stage: its name, execution model, the
// variables reachable from it (or all known variables, in reference-all
// mode), and the execution modes that apply to it. Produced by Reflect.
type EntryPoint struct {
	Name           string
	ExecutionModel ExecutionModel
	Variables      []Variable
	ExecutionModes []ExecutionMode
}

// Inspector observes every instruction from the first OpFunction onward —
// the sole extension point into ingestion, invoked on every instruction
// once function-body walking begins. It runs synchronously on the
// same goroutine as Reflect and must not retain ctx.Operands past the call.
type Inspector func(ctx InspectorContext)

// InspectorContext is the read-only view an Inspector receives for one
// instruction during function-body walking.
type InspectorContext struct {
	Opcode          OpCode
	Operands        []uint32
	CurrentFunction uint32
}

// Reflect decodes blob as a SPIR-V module and projects its entry points.
// blob's length must be a multiple of 4; its header magic must match
// SPIR-V's. Reflection is total and synchronous: on any error, no partial
// result is returned.
func Reflect(blob []byte, opts Options) ([]EntryPoint, error) {
	return ReflectWithInspector(blob, opts, nil)
}

// ReflectWithInspector is Reflect with an additional observer that watches
// every instruction in every function body as ingestion walks it.
func ReflectWithInspector(blob []byte, opts Options, inspector Inspector) ([]EntryPoint, error) {
	if len(blob)%4 != 0 {
		return nil, newErr(KindCorruptedBinary, "blob length is not a multiple of 4")
	}
	resolved := opts.resolve()
	im, err := ingest(blob, resolved, inspector)
	if err != nil {
		return nil, err
	}
	return project(im, resolved)
}
