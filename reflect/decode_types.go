package reflect

// Decoders for the OpType* family. Each returns the result id plus the raw
// operands; the ingestion pass (intermediate.go) is responsible for
// resolving operand ids through the types table and assembling the Type
// value, since decoders must not do table lookups (they only borrow and
// parse the payload).

type typeIntInstr struct {
	resultID uint32
	width    uint32
	signed   bool
}

func decodeTypeInt(p []uint32) (typeIntInstr, error) {
	if len(p) < 3 {
		return typeIntInstr{}, tooShort(opTypeInt)
	}
	return typeIntInstr{resultID: p[0], width: p[1], signed: p[2] == 1}, nil
}

type typeFloatInstr struct {
	resultID uint32
	width    uint32
}

func decodeTypeFloat(p []uint32) (typeFloatInstr, error) {
	if len(p) < 2 {
		return typeFloatInstr{}, tooShort(opTypeFloat)
	}
	return typeFloatInstr{resultID: p[0], width: p[1]}, nil
}

type typeVoidInstr struct{ resultID uint32 }

func decodeTypeVoid(p []uint32) (typeVoidInstr, error) {
	if len(p) < 1 {
		return typeVoidInstr{}, tooShort(opTypeVoid)
	}
	return typeVoidInstr{resultID: p[0]}, nil
}

type typeBoolInstr struct{ resultID uint32 }

func decodeTypeBool(p []uint32) (typeBoolInstr, error) {
	if len(p) < 1 {
		return typeBoolInstr{}, tooShort(opTypeBool)
	}
	return typeBoolInstr{resultID: p[0]}, nil
}

type typeVectorInstr struct {
	resultID  uint32
	compType  uint32
	compCount uint32
}

func decodeTypeVector(p []uint32) (typeVectorInstr, error) {
	if len(p) < 3 {
		return typeVectorInstr{}, tooShort(opTypeVector)
	}
	return typeVectorInstr{resultID: p[0], compType: p[1], compCount: p[2]}, nil
}

type typeMatrixInstr struct {
	resultID uint32
	colType  uint32
	colCount uint32
}

func decodeTypeMatrix(p []uint32) (typeMatrixInstr, error) {
	if len(p) < 3 {
		return typeMatrixInstr{}, tooShort(opTypeMatrix)
	}
	return typeMatrixInstr{resultID: p[0], colType: p[1], colCount: p[2]}, nil
}

type typeImageInstr struct {
	resultID    uint32
	sampledType uint32
	dim         imageDim
	depth       uint32
	arrayed     bool
	ms          bool
	sampled     uint32 // 0 = unknown at compile time, 1 = sampled, 2 = storage
	format      uint32
}

func decodeTypeImage(p []uint32) (typeImageInstr, error) {
	if len(p) < 7 {
		return typeImageInstr{}, tooShort(opTypeImage)
	}
	return typeImageInstr{
		resultID:    p[0],
		sampledType: p[1],
		dim:         imageDim(p[2]),
		depth:       p[3],
		arrayed:     p[4] != 0,
		ms:          p[5] != 0,
		sampled:     p[6],
		format:      orZero(p, 7),
	}, nil
}

func orZero(p []uint32, i int) uint32 {
	if i < len(p) {
		return p[i]
	}
	return 0
}

type typeSamplerInstr struct{ resultID uint32 }

func decodeTypeSampler(p []uint32) (typeSamplerInstr, error) {
	if len(p) < 1 {
		return typeSamplerInstr{}, tooShort(opTypeSampler)
	}
	return typeSamplerInstr{resultID: p[0]}, nil
}

type typeSampledImageInstr struct {
	resultID uint32
	imageType uint32
}

func decodeTypeSampledImage(p []uint32) (typeSampledImageInstr, error) {
	if len(p) < 2 {
		return typeSampledImageInstr{}, tooShort(opTypeSampledImage)
	}
	return typeSampledImageInstr{resultID: p[0], imageType: p[1]}, nil
}

type typeArrayInstr struct {
	resultID uint32
	elemType uint32
	lengthID uint32
}

func decodeTypeArray(p []uint32) (typeArrayInstr, error) {
	if len(p) < 3 {
		return typeArrayInstr{}, tooShort(opTypeArray)
	}
	return typeArrayInstr{resultID: p[0], elemType: p[1], lengthID: p[2]}, nil
}

type typeRuntimeArrayInstr struct {
	resultID uint32
	elemType uint32
}

func decodeTypeRuntimeArray(p []uint32) (typeRuntimeArrayInstr, error) {
	if len(p) < 2 {
		return typeRuntimeArrayInstr{}, tooShort(opTypeRuntimeArray)
	}
	return typeRuntimeArrayInstr{resultID: p[0], elemType: p[1]}, nil
}

type typeStructInstr struct {
	resultID   uint32
	memberTyps []uint32
}

func decodeTypeStruct(p []uint32) (typeStructInstr, error) {
	if len(p) < 1 {
		return typeStructInstr{}, tooShort(opTypeStruct)
	}
	var members []uint32
	if len(p) > 1 {
		members = p[1:]
	}
	return typeStructInstr{resultID: p[0], memberTyps: members}, nil
}

type typePointerInstr struct {
	resultID uint32
	storage  StorageClass
	pointee  uint32
}

func decodeTypePointer(p []uint32) (typePointerInstr, error) {
	if len(p) < 3 {
		return typePointerInstr{}, tooShort(opTypePointer)
	}
	return typePointerInstr{resultID: p[0], storage: StorageClass(p[1]), pointee: p[2]}, nil
}

type typeAccelStructInstr struct{ resultID uint32 }

func decodeTypeAccelStruct(p []uint32) (typeAccelStructInstr, error) {
	if len(p) < 1 {
		return typeAccelStructInstr{}, tooShort(opTypeAccelStruct)
	}
	return typeAccelStructInstr{resultID: p[0]}, nil
}
