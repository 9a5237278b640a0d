package reflect

type constantInstr struct {
	typeID   uint32
	resultID uint32
	words    []uint32
}

func decodeConstant(p []uint32) (constantInstr, error) {
	if len(p) < 3 {
		return constantInstr{}, tooShort(opConstant)
	}
	return constantInstr{typeID: p[0], resultID: p[1], words: p[2:]}, nil
}

type constantBoolInstr struct {
	typeID   uint32
	resultID uint32
}

func decodeConstantBool(p []uint32, op OpCode) (constantBoolInstr, error) {
	if len(p) < 2 {
		return constantBoolInstr{}, tooShort(op)
	}
	return constantBoolInstr{typeID: p[0], resultID: p[1]}, nil
}

type specConstantOpInstr struct {
	typeID   uint32
	resultID uint32
	opcode   OpCode
	operands []uint32
}

func decodeSpecConstantOp(p []uint32) (specConstantOpInstr, error) {
	if len(p) < 3 {
		return specConstantOpInstr{}, tooShort(opSpecConstantOp)
	}
	var ops []uint32
	if len(p) > 3 {
		ops = p[3:]
	}
	return specConstantOpInstr{typeID: p[0], resultID: p[1], opcode: OpCode(p[2]), operands: ops}, nil
}
