package reflect

import "fmt"

// This file holds instruction decoders for the non-type, non-constant
// opcodes: entry points, execution modes, debug names, decorations,
// variables, and the function-body opcodes used for reachability.
// Each decoder borrows from instr.payload and fails with INSTR_TOO_SHORT
// if the payload is shorter than the fixed fields the decoder reads,
// mirroring cmd/spvdis's operand-position knowledge.

func tooShort(op OpCode) *Error {
	return newErr(KindInstrTooShort, fmt.Sprintf("payload too short for opcode %d", op))
}

type entryPointInstr struct {
	model      ExecutionModel
	funcID     uint32
	name       string
	interfaces []uint32
}

func decodeEntryPoint(p []uint32) (entryPointInstr, error) {
	if len(p) < 3 {
		return entryPointInstr{}, tooShort(opEntryPoint)
	}
	name, nameWords := readNulString(p[2:])
	rest := 2 + nameWords
	var ifaces []uint32
	if rest < len(p) {
		ifaces = p[rest:]
	}
	return entryPointInstr{
		model:      ExecutionModel(p[0]),
		funcID:     p[1],
		name:       name,
		interfaces: ifaces,
	}, nil
}

type executionModeInstr struct {
	target   uint32
	mode     execModeCode
	operands []uint32
	// idOperands is true for OpExecutionModeId, whose trailing operands are
	// ids referencing spec constants rather than literals.
	idOperands bool
}

func decodeExecutionMode(p []uint32, isID bool) (executionModeInstr, error) {
	if len(p) < 2 {
		return executionModeInstr{}, tooShort(opExecutionMode)
	}
	var ops []uint32
	if len(p) > 2 {
		ops = p[2:]
	}
	return executionModeInstr{target: p[0], mode: execModeCode(p[1]), operands: ops, idOperands: isID}, nil
}

type nameInstr struct {
	target uint32
	name   string
}

func decodeName(p []uint32) (nameInstr, error) {
	if len(p) < 1 {
		return nameInstr{}, tooShort(opName)
	}
	name, _ := readNulString(p[1:])
	return nameInstr{target: p[0], name: name}, nil
}

type memberNameInstr struct {
	target uint32
	member uint32
	name   string
}

func decodeMemberName(p []uint32) (memberNameInstr, error) {
	if len(p) < 2 {
		return memberNameInstr{}, tooShort(opMemberName)
	}
	name, _ := readNulString(p[2:])
	return memberNameInstr{target: p[0], member: p[1], name: name}, nil
}

type decorateInstr struct {
	target   uint32
	deco     Decoration
	operands []uint32
}

func decodeDecorate(p []uint32) (decorateInstr, error) {
	if len(p) < 2 {
		return decorateInstr{}, tooShort(opDecorate)
	}
	var ops []uint32
	if len(p) > 2 {
		ops = p[2:]
	}
	return decorateInstr{target: p[0], deco: Decoration(p[1]), operands: ops}, nil
}

type memberDecorateInstr struct {
	target   uint32
	member   uint32
	deco     Decoration
	operands []uint32
}

func decodeMemberDecorate(p []uint32) (memberDecorateInstr, error) {
	if len(p) < 3 {
		return memberDecorateInstr{}, tooShort(opMemberDecorate)
	}
	var ops []uint32
	if len(p) > 3 {
		ops = p[3:]
	}
	return memberDecorateInstr{target: p[0], member: p[1], deco: Decoration(p[2]), operands: ops}, nil
}

type variableInstr struct {
	resultType uint32 // a Pointer type id
	resultID   uint32
	storage    StorageClass
}

func decodeVariable(p []uint32) (variableInstr, error) {
	if len(p) < 3 {
		return variableInstr{}, tooShort(opVariable)
	}
	return variableInstr{resultType: p[0], resultID: p[1], storage: StorageClass(p[2])}, nil
}

type functionInstr struct {
	resultType uint32
	resultID   uint32
}

func decodeFunction(p []uint32) (functionInstr, error) {
	if len(p) < 2 {
		return functionInstr{}, tooShort(opFunction)
	}
	return functionInstr{resultType: p[0], resultID: p[1]}, nil
}

type functionCallInstr struct {
	calleeID uint32
}

func decodeFunctionCall(p []uint32) (functionCallInstr, error) {
	if len(p) < 3 {
		return functionCallInstr{}, tooShort(opFunctionCall)
	}
	return functionCallInstr{calleeID: p[2]}, nil
}

type loadInstr struct {
	pointerID uint32
}

func decodeLoad(p []uint32) (loadInstr, error) {
	if len(p) < 3 {
		return loadInstr{}, tooShort(opLoad)
	}
	return loadInstr{pointerID: p[2]}, nil
}

type storeInstr struct {
	pointerID uint32
}

func decodeStore(p []uint32) (storeInstr, error) {
	if len(p) < 1 {
		return storeInstr{}, tooShort(opStore)
	}
	return storeInstr{pointerID: p[0]}, nil
}

type accessChainInstr struct {
	resultID uint32
	baseID   uint32
}

func decodeAccessChain(p []uint32) (accessChainInstr, error) {
	if len(p) < 3 {
		return accessChainInstr{}, tooShort(opAccessChain)
	}
	return accessChainInstr{resultID: p[1], baseID: p[2]}, nil
}

// atomicPointer extracts the pointer operand from any OpAtomic* instruction.
// Result-bearing atomics (Load, Exchange, IAdd, …) put it at payload[2];
// OpAtomicStore, which has no result, puts it at payload[0].
func atomicPointer(op OpCode, p []uint32) (uint32, error) {
	if op == opAtomicStore {
		if len(p) < 1 {
			return 0, tooShort(op)
		}
		return p[0], nil
	}
	if len(p) < 3 {
		return 0, tooShort(op)
	}
	return p[2], nil
}
