package reflect

import "math"

// intermediate is the single-use ingestion state machine. It owns every
// id-keyed table ingestion populates; nothing outside this package ever
// sees it directly, and it is discarded once project has consumed it.
// One struct owning several parallel id-keyed maps, populated in one
// left-to-right pass.
type intermediate struct {
	opts resolvedOptions

	types map[uint32]Type
	// typeArrayElemID tracks, for every OpTypeArray/OpTypeRuntimeArray
	// result, the element type's own id — needed to look up decorations
	// (BufferBlock, etc.) on the element after binding-count unwrap, since
	// Type values themselves carry no id.
	typeArrayElemID map[uint32]uint32
	// hasAllOffsets is set false for a struct type id the moment any member
	// is found without an Offset decoration.
	hasAllOffsets map[uint32]bool

	pointerMap map[uint32]pointerInfo

	names       map[uint32]string
	memberNames map[uint32]map[uint32]string

	decorations       map[uint32]map[Decoration][]uint32
	memberDecorations map[uint32]map[uint32]map[Decoration][]uint32

	constants map[uint32]*constant

	variables     []Variable
	variableIndex map[uint32]int
	declaratorMap map[Locator]uint32

	functions map[uint32]*functionInfo

	entryPoints []entryPointInstr
	execModes   map[uint32][]ExecutionMode

	accessChainBase map[uint32]uint32

	inspector Inspector
}

type pointerInfo struct {
	storage StorageClass
	pointee uint32
}

type functionInfo struct {
	accessedVars map[uint32]bool
	callees      map[uint32]bool
}

func newIntermediate(opts resolvedOptions, inspector Inspector) *intermediate {
	return &intermediate{
		opts:              opts,
		types:             map[uint32]Type{},
		typeArrayElemID:   map[uint32]uint32{},
		hasAllOffsets:     map[uint32]bool{},
		pointerMap:        map[uint32]pointerInfo{},
		names:             map[uint32]string{},
		memberNames:       map[uint32]map[uint32]string{},
		decorations:       map[uint32]map[Decoration][]uint32{},
		memberDecorations: map[uint32]map[uint32]map[Decoration][]uint32{},
		constants:         map[uint32]*constant{},
		variableIndex:     map[uint32]int{},
		declaratorMap:     map[Locator]uint32{},
		functions:         map[uint32]*functionInfo{},
		execModes:         map[uint32][]ExecutionMode{},
		accessChainBase:   map[uint32]uint32{},
		inspector:         inspector,
	}
}

// ingest runs the single left-to-right pass over blob's word stream and
// returns the populated intermediate. SPIR-V's logical module layout
// guarantees decorations and names precede the definitions that need them,
// so a single forward pass is sufficient; nothing needs rewinding.
func ingest(blob []byte, opts resolvedOptions, inspector Inspector) (*intermediate, error) {
	it, _, err := newIterator(blob)
	if err != nil {
		return nil, err
	}
	im := newIntermediate(opts, inspector)

	var currentFunc uint32
	var seenFirstFunction bool

	for {
		ins, ok, err := it.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}

		if ins.opcode == opFunction {
			seenFirstFunction = true
		}
		if seenFirstFunction && im.inspector != nil {
			im.inspector(InspectorContext{Opcode: ins.opcode, Operands: ins.payload, CurrentFunction: currentFunc})
		}

		switch ins.opcode {
		case opEntryPoint:
			ep, err := decodeEntryPoint(ins.payload)
			if err != nil {
				return nil, err
			}
			im.entryPoints = append(im.entryPoints, ep)

		case opExecutionMode, opExecutionModeId:
			em, err := decodeExecutionMode(ins.payload, ins.opcode == opExecutionModeId)
			if err != nil {
				return nil, err
			}
			kind, ok := execModeTable[em.mode]
			if !ok {
				return nil, newErrID(KindUnsupportedExec, "unrecognised execution mode", em.target)
			}
			im.execModes[em.target] = append(im.execModes[em.target], ExecutionMode{Kind: kind, Operand: em.operands})

		case opName:
			n, err := decodeName(ins.payload)
			if err != nil {
				return nil, err
			}
			if err := im.setName(n.target, n.name); err != nil {
				return nil, err
			}

		case opMemberName:
			n, err := decodeMemberName(ins.payload)
			if err != nil {
				return nil, err
			}
			if err := im.setMemberName(n.target, n.member, n.name); err != nil {
				return nil, err
			}

		case opDecorate:
			d, err := decodeDecorate(ins.payload)
			if err != nil {
				return nil, err
			}
			if err := im.setDecoration(d.target, d.deco, d.operands); err != nil {
				return nil, err
			}

		case opMemberDecorate:
			d, err := decodeMemberDecorate(ins.payload)
			if err != nil {
				return nil, err
			}
			if err := im.setMemberDecoration(d.target, d.member, d.deco, d.operands); err != nil {
				return nil, err
			}

		case opTypeVoid, opTypeBool, opTypeInt, opTypeFloat, opTypeVector, opTypeMatrix,
			opTypeImage, opTypeSampler, opTypeSampledImage, opTypeArray, opTypeRuntimeArray,
			opTypeStruct, opTypePointer, opTypeAccelStruct:
			if err := im.ingestType(ins.opcode, ins.payload); err != nil {
				return nil, err
			}

		case opVariable:
			if err := im.ingestVariable(ins.payload); err != nil {
				return nil, err
			}

		case opConstant, opSpecConstant:
			if err := im.ingestScalarConstant(ins.opcode, ins.payload); err != nil {
				return nil, err
			}

		case opConstantTrue, opConstantFalse, opSpecConstantTrue, opSpecConstantFalse:
			if err := im.ingestBoolConstant(ins.opcode, ins.payload); err != nil {
				return nil, err
			}

		case opSpecConstantOp:
			if err := im.ingestSpecConstantOp(ins.payload); err != nil {
				return nil, err
			}

		case opConstantComposite, opSpecConstantComposite:
			// Composites carry no foldable scalar value of their own; their
			// constituents keep their individual constant-table entries.

		case opFunction:
			fn, err := decodeFunction(ins.payload)
			if err != nil {
				return nil, err
			}
			currentFunc = fn.resultID
			im.functions[fn.resultID] = &functionInfo{accessedVars: map[uint32]bool{}, callees: map[uint32]bool{}}

		case opFunctionEnd:
			currentFunc = 0

		case opFunctionCall:
			fc, err := decodeFunctionCall(ins.payload)
			if err != nil {
				return nil, err
			}
			if fn := im.functions[currentFunc]; fn != nil {
				fn.callees[fc.calleeID] = true
			}

		case opAccessChain, opInBoundsAccessChain:
			ac, err := decodeAccessChain(ins.payload)
			if err != nil {
				return nil, err
			}
			im.accessChainBase[ac.resultID] = im.resolveAccessChain(ac.baseID)

		case opLoad:
			ld, err := decodeLoad(ins.payload)
			if err != nil {
				return nil, err
			}
			im.recordAccess(currentFunc, ld.pointerID)

		case opStore:
			st, err := decodeStore(ins.payload)
			if err != nil {
				return nil, err
			}
			im.recordAccess(currentFunc, st.pointerID)

		case opAtomicLoad, opAtomicStore, opAtomicExchange, opAtomicCompareExchange,
			opAtomicIIncrement, opAtomicIDecrement, opAtomicIAdd, opAtomicISub,
			opAtomicSMin, opAtomicUMin, opAtomicSMax, opAtomicUMax,
			opAtomicAnd, opAtomicOr, opAtomicXor:
			ptr, err := atomicPointer(ins.opcode, ins.payload)
			if err != nil {
				return nil, err
			}
			im.recordAccess(currentFunc, ptr)
		}
	}

	return im, nil
}

func (im *intermediate) recordAccess(currentFunc, pointerID uint32) {
	if fn := im.functions[currentFunc]; fn != nil {
		fn.accessedVars[im.resolveAccessChain(pointerID)] = true
	}
}

// resolveAccessChain follows a possibly-chained access-chain result back to
// the global variable id it ultimately points into. A plain (non-chained)
// pointer id resolves to itself.
func (im *intermediate) resolveAccessChain(id uint32) uint32 {
	if base, ok := im.accessChainBase[id]; ok {
		return base
	}
	return id
}

func (im *intermediate) setName(target uint32, name string) error {
	if name == "" {
		return nil
	}
	if _, exists := im.names[target]; exists {
		return newErrID(KindNameCollision, "duplicate name", target)
	}
	im.names[target] = name
	return nil
}

func (im *intermediate) setMemberName(target, member uint32, name string) error {
	if name == "" {
		return nil
	}
	mm, ok := im.memberNames[target]
	if !ok {
		mm = map[uint32]string{}
		im.memberNames[target] = mm
	}
	if _, exists := mm[member]; exists {
		return newErrID(KindNameCollision, "duplicate member name", target)
	}
	mm[member] = name
	return nil
}

func (im *intermediate) setDecoration(target uint32, deco Decoration, operands []uint32) error {
	m, ok := im.decorations[target]
	if !ok {
		m = map[Decoration][]uint32{}
		im.decorations[target] = m
	}
	if _, exists := m[deco]; exists {
		return newErrID(KindDecoCollision, "duplicate decoration", target)
	}
	m[deco] = operands
	return nil
}

func (im *intermediate) setMemberDecoration(target, member uint32, deco Decoration, operands []uint32) error {
	mm, ok := im.memberDecorations[target]
	if !ok {
		mm = map[uint32]map[Decoration][]uint32{}
		im.memberDecorations[target] = mm
	}
	m, ok := mm[member]
	if !ok {
		m = map[Decoration][]uint32{}
		mm[member] = m
	}
	if _, exists := m[deco]; exists {
		return newErrID(KindDecoCollision, "duplicate member decoration", target)
	}
	m[deco] = operands
	return nil
}

func (im *intermediate) defineType(id uint32, t Type) error {
	if _, exists := im.types[id]; exists {
		return newErrID(KindIDCollision, "type id already defined", id)
	}
	im.types[id] = t
	return nil
}

func (im *intermediate) resolveType(id uint32) (Type, error) {
	t, ok := im.types[id]
	if !ok {
		return nil, newErrID(KindTyNotFound, "referenced type id not found", id)
	}
	return t, nil
}

func (im *intermediate) resolveScalar(id uint32) (Scalar, error) {
	t, err := im.resolveType(id)
	if err != nil {
		return Scalar{}, err
	}
	s, ok := t.(Scalar)
	if !ok {
		return Scalar{}, newErrID(KindUnsupportedTy, "expected scalar type", id)
	}
	return s, nil
}

func (im *intermediate) resolveVector(id uint32) (Vector, error) {
	t, err := im.resolveType(id)
	if err != nil {
		return Vector{}, err
	}
	v, ok := t.(Vector)
	if !ok {
		return Vector{}, newErrID(KindUnsupportedTy, "expected vector type", id)
	}
	return v, nil
}

func (im *intermediate) firstWord(target uint32, deco Decoration) (uint32, bool) {
	m, ok := im.decorations[target]
	if !ok {
		return 0, false
	}
	ops, ok := m[deco]
	if !ok || len(ops) == 0 {
		return 0, false
	}
	return ops[0], true
}

func (im *intermediate) firstMemberWord(target, member uint32, deco Decoration) (uint32, bool) {
	mm, ok := im.memberDecorations[target]
	if !ok {
		return 0, false
	}
	m, ok := mm[member]
	if !ok {
		return 0, false
	}
	ops, ok := m[deco]
	if !ok || len(ops) == 0 {
		return 0, false
	}
	return ops[0], true
}

func (im *intermediate) ingestType(op OpCode, p []uint32) error {
	switch op {
	case opTypeVoid:
		d, err := decodeTypeVoid(p)
		if err != nil {
			return err
		}
		return im.defineType(d.resultID, Void{})

	case opTypeBool:
		d, err := decodeTypeBool(p)
		if err != nil {
			return err
		}
		return im.defineType(d.resultID, Scalar{Kind: ScalarBoolean, Width: 0})

	case opTypeInt:
		d, err := decodeTypeInt(p)
		if err != nil {
			return err
		}
		kind := ScalarUnsigned
		if d.signed {
			kind = ScalarSigned
		}
		return im.defineType(d.resultID, Scalar{Kind: kind, Width: uint8(d.width / 8)})

	case opTypeFloat:
		d, err := decodeTypeFloat(p)
		if err != nil {
			return err
		}
		return im.defineType(d.resultID, Scalar{Kind: ScalarFloat, Width: uint8(d.width / 8)})

	case opTypeVector:
		d, err := decodeTypeVector(p)
		if err != nil {
			return err
		}
		comp, err := im.resolveScalar(d.compType)
		if err != nil {
			return err
		}
		return im.defineType(d.resultID, Vector{Scalar: comp, Count: uint8(d.compCount)})

	case opTypeMatrix:
		d, err := decodeTypeMatrix(p)
		if err != nil {
			return err
		}
		col, err := im.resolveVector(d.colType)
		if err != nil {
			return err
		}
		return im.defineType(d.resultID, Matrix{Column: col, Count: uint8(d.colCount)})

	case opTypeImage:
		d, err := decodeTypeImage(p)
		if err != nil {
			return err
		}
		var sampled *Scalar
		if _, isVoid := im.types[d.sampledType].(Void); d.sampledType != 0 && !isVoid {
			s, err := im.resolveScalar(d.sampledType)
			if err != nil {
				return err
			}
			sampled = &s
		}
		arrangement := ImageArrangement{Dim: d.dim, Arrayed: d.arrayed, Multisampled: d.ms}
		if d.dim == dimSubpassData {
			return im.defineType(d.resultID, SubpassData{Sampled: sampled, Arrangement: arrangement})
		}
		unit := ImageUnitSampled
		switch {
		case d.depth == 1:
			unit = ImageUnitDepth
		case d.sampled == 2:
			unit = ImageUnitColor
		case d.sampled == 1:
			unit = ImageUnitSampled
		}
		return im.defineType(d.resultID, Image{
			Sampled:     sampled,
			Unit:        unit,
			Format:      ImageFormat(d.format),
			Arrangement: arrangement,
		})

	case opTypeSampler:
		d, err := decodeTypeSampler(p)
		if err != nil {
			return err
		}
		return im.defineType(d.resultID, Sampler{})

	case opTypeSampledImage:
		d, err := decodeTypeSampledImage(p)
		if err != nil {
			return err
		}
		inner, err := im.resolveType(d.imageType)
		if err != nil {
			return err
		}
		img, ok := inner.(Image)
		if !ok {
			return newErrID(KindUnsupportedTy, "OpTypeSampledImage operand is not an image", d.resultID)
		}
		return im.defineType(d.resultID, SampledImage{Image: img})

	case opTypeArray:
		d, err := decodeTypeArray(p)
		if err != nil {
			return err
		}
		elem, err := im.resolveType(d.elemType)
		if err != nil {
			return err
		}
		c, ok := im.constants[d.lengthID]
		if !ok {
			return newErrID(KindConstNotFound, "array length constant not found", d.resultID)
		}
		count, ok := c.value.asU32()
		if !ok {
			return newErrID(KindBrokenNestedTy, "array length constant is not integral", d.resultID)
		}
		stride, _ := im.firstWord(d.resultID, DecorationArrayStride)
		im.typeArrayElemID[d.resultID] = d.elemType
		return im.defineType(d.resultID, Array{Element: elem, Count: count, Stride: stride})

	case opTypeRuntimeArray:
		d, err := decodeTypeRuntimeArray(p)
		if err != nil {
			return err
		}
		elem, err := im.resolveType(d.elemType)
		if err != nil {
			return err
		}
		stride, _ := im.firstWord(d.resultID, DecorationArrayStride)
		im.typeArrayElemID[d.resultID] = d.elemType
		return im.defineType(d.resultID, Array{Element: elem, Count: 0, Stride: stride})

	case opTypeStruct:
		d, err := decodeTypeStruct(p)
		if err != nil {
			return err
		}
		members := make([]StructMember, len(d.memberTyps))
		allOffsets := true
		for i, mt := range d.memberTyps {
			idx := uint32(i)
			mType, err := im.resolveType(mt)
			if err != nil {
				return err
			}
			if m, ok := mType.(Matrix); ok {
				stride, hasStride := im.firstMemberWord(d.resultID, idx, DecorationMatrixStride)
				_, isRow := im.memberDecorations[d.resultID][idx][DecorationRowMajor]
				_, isCol := im.memberDecorations[d.resultID][idx][DecorationColMajor]
				if isRow == isCol {
					return newErrMember(KindUnencodedEnum, "matrix member missing exactly one of RowMajor/ColMajor", d.resultID, i)
				}
				major := MajorColumn
				if isRow {
					major = MajorRow
				}
				if hasStride {
					m.Stride = stride
				}
				m.Major = major
				mType = m
			}
			offset, ok := im.firstMemberWord(d.resultID, idx, DecorationOffset)
			if !ok {
				allOffsets = false
			}
			name := im.memberNames[d.resultID][idx]
			members[i] = StructMember{Name: name, Offset: offset, Type: mType}
		}
		im.hasAllOffsets[d.resultID] = allOffsets
		return im.defineType(d.resultID, Struct{Name: im.names[d.resultID], Members: members})

	case opTypePointer:
		d, err := decodeTypePointer(p)
		if err != nil {
			return err
		}
		if _, exists := im.pointerMap[d.resultID]; exists {
			return newErrID(KindIDCollision, "pointer type id already defined", d.resultID)
		}
		im.pointerMap[d.resultID] = pointerInfo{storage: d.storage, pointee: d.pointee}
		return nil

	case opTypeAccelStruct:
		d, err := decodeTypeAccelStruct(p)
		if err != nil {
			return err
		}
		return im.defineType(d.resultID, AccelStruct{})
	}
	return nil
}

func scalarConstantValue(s Scalar, words []uint32, id uint32) (ConstantValue, error) {
	switch s.Kind {
	case ScalarSigned:
		if s.Width == 8 {
			if len(words) < 2 {
				return ConstantValue{}, newErrID(KindBrokenNestedTy, "64-bit constant missing high word", id)
			}
			return ConstantValue{Kind: ValueI64, I64: int64(uint64(words[0]) | uint64(words[1])<<32)}, nil
		}
		if len(words) < 1 {
			return ConstantValue{}, newErrID(KindBrokenNestedTy, "constant missing value word", id)
		}
		return ConstantValue{Kind: ValueI32, I32: int32(words[0])}, nil
	case ScalarUnsigned:
		if s.Width == 8 {
			if len(words) < 2 {
				return ConstantValue{}, newErrID(KindBrokenNestedTy, "64-bit constant missing high word", id)
			}
			return ConstantValue{Kind: ValueU64, U64: uint64(words[0]) | uint64(words[1])<<32}, nil
		}
		if len(words) < 1 {
			return ConstantValue{}, newErrID(KindBrokenNestedTy, "constant missing value word", id)
		}
		return ConstantValue{Kind: ValueU32, U32: words[0]}, nil
	case ScalarFloat:
		if s.Width == 8 {
			if len(words) < 2 {
				return ConstantValue{}, newErrID(KindBrokenNestedTy, "64-bit constant missing high word", id)
			}
			bits := uint64(words[0]) | uint64(words[1])<<32
			return ConstantValue{Kind: ValueF64, F64: math.Float64frombits(bits)}, nil
		}
		if len(words) < 1 {
			return ConstantValue{}, newErrID(KindBrokenNestedTy, "constant missing value word", id)
		}
		return ConstantValue{Kind: ValueF32, F32: math.Float32frombits(words[0])}, nil
	default:
		return ConstantValue{}, newErrID(KindUnsupportedConst, "constant type is not a numeric scalar", id)
	}
}

func (im *intermediate) defineConstant(id uint32, c *constant) error {
	if _, exists := im.constants[id]; exists {
		return newErrID(KindIDCollision, "constant id already defined", id)
	}
	im.constants[id] = c
	return nil
}

func (im *intermediate) ingestScalarConstant(op OpCode, p []uint32) error {
	d, err := decodeConstant(p)
	if err != nil {
		return err
	}
	scalar, err := im.resolveScalar(d.typeID)
	if err != nil {
		return err
	}
	val, err := scalarConstantValue(scalar, d.words, d.resultID)
	if err != nil {
		return err
	}
	return im.defineConstant(d.resultID, im.finalizeSpecValue(op, d.resultID, val))
}

func (im *intermediate) ingestBoolConstant(op OpCode, p []uint32) error {
	d, err := decodeConstantBool(p, op)
	if err != nil {
		return err
	}
	boolVal := op == opConstantTrue || op == opSpecConstantTrue
	val := ConstantValue{Kind: ValueBool, Bool: boolVal}
	return im.defineConstant(d.resultID, im.finalizeSpecValue(op, d.resultID, val))
}

// finalizeSpecValue attaches an outstanding spec-id (for OpSpecConstant*
// results) unless an override was supplied, in which case the override
// value is used and the spec-id is cleared.
func (im *intermediate) finalizeSpecValue(op OpCode, id uint32, val ConstantValue) *constant {
	isSpec := op == opSpecConstant || op == opSpecConstantTrue || op == opSpecConstantFalse
	if !isSpec {
		return &constant{value: val}
	}
	specIDWord, hasSpecID := im.firstWord(id, DecorationSpecId)
	if override, ok := im.overrideFor(specIDWord, hasSpecID); ok {
		return &constant{value: override}
	}
	if !hasSpecID {
		return &constant{value: val}
	}
	sid := specIDWord
	return &constant{value: val, specID: &sid}
}

func (im *intermediate) overrideFor(specID uint32, hasSpecID bool) (ConstantValue, bool) {
	if !hasSpecID {
		return ConstantValue{}, false
	}
	v, ok := im.opts.overrides[specID]
	return v, ok
}

func (im *intermediate) ingestSpecConstantOp(p []uint32) error {
	d, err := decodeSpecConstantOp(p)
	if err != nil {
		return err
	}
	lookup := func(id uint32) (ConstantValue, error) {
		c, ok := im.constants[id]
		if !ok {
			return ConstantValue{}, newErrID(KindConstNotFound, "spec-constant-op operand not found", id)
		}
		return c.value, nil
	}
	val, err := foldSpecConstantOp(d, lookup)
	if err != nil {
		return err
	}
	return im.defineConstant(d.resultID, &constant{value: val})
}

func (im *intermediate) ingestVariable(p []uint32) error {
	d, err := decodeVariable(p)
	if err != nil {
		return err
	}
	ptr, ok := im.pointerMap[d.resultType]
	if !ok {
		return newErrID(KindTyNotFound, "variable's pointer type not found", d.resultID)
	}
	pointee, ok := im.types[ptr.pointee]
	if !ok {
		// Stage-to-stage interface block whose type was never registered:
		// silently skip.
		return nil
	}

	name := im.names[d.resultID]

	if isPushConstantCandidate(d.storage, pointee) {
		v := Variable{Kind: VarPushConstant, Name: name, Type: pointee}
		im.registerVariable(d.resultID, v)
		return nil
	}

	if kind, ok := isInterfaceCandidate(d.storage, classifyDescorations{hasLocation: im.hasDecoration(d.resultID, DecorationLocation)}); ok {
		loc, _ := im.firstWord(d.resultID, DecorationLocation)
		comp, _ := im.firstWord(d.resultID, DecorationComponent)
		v := Variable{
			Kind:     kind,
			Name:     name,
			Location: InterfaceLocation{Location: loc, Component: comp},
			Type:     pointee,
		}
		im.registerVariable(d.resultID, v)
		return nil
	}

	switch d.storage {
	case StorageClassUniform, StorageClassStorageBuffer, StorageClassUniformConstant:
		bindingCount, elemType := unwrapBindingCount(pointee)
		elemTypeID := ptr.pointee
		if id, ok := im.typeArrayElemID[ptr.pointee]; ok {
			elemTypeID = id
		}
		if _, ok := elemType.(Struct); ok {
			if allOK, tracked := im.hasAllOffsets[elemTypeID]; tracked && !allOK {
				// A struct member lacking Offset marks this as a
				// stage-to-stage block, not a resource: skip the whole
				// variable.
				return nil
			}
		}
		deco := classifyDescorations{
			bufferBlock:          im.hasDecoration(elemTypeID, DecorationBufferBlock),
			nonWritable:          im.hasDecoration(d.resultID, DecorationNonWritable),
			nonReadable:          im.hasDecoration(d.resultID, DecorationNonReadable),
			inputAttachmentIndex: firstOr(im, d.resultID, DecorationInputAttachmentIndex),
		}
		descType, ok, err := classifyDescriptor(d.storage, elemType, deco, d.resultID)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		set, _ := im.firstWord(d.resultID, DecorationDescriptorSet)
		binding, _ := im.firstWord(d.resultID, DecorationBinding)
		v := Variable{
			Kind:           VarDescriptor,
			Name:           name,
			Binding:        DescriptorBinding{Set: set, Binding: binding},
			DescriptorType: descType,
			BindingCount:   bindingCount,
			Type:           elemType,
		}
		im.registerVariable(d.resultID, v)
	}
	// Any other storage class (Workgroup, Private, Function, …) is silently
	// ignored.
	return nil
}

func firstOr(im *intermediate, target uint32, deco Decoration) uint32 {
	v, _ := im.firstWord(target, deco)
	return v
}

func (im *intermediate) hasDecoration(target uint32, deco Decoration) bool {
	m, ok := im.decorations[target]
	if !ok {
		return false
	}
	_, ok = m[deco]
	return ok
}

func (im *intermediate) registerVariable(id uint32, v Variable) {
	im.variableIndex[id] = len(im.variables)
	im.variables = append(im.variables, v)
	if _, exists := im.declaratorMap[v.Locator()]; !exists {
		im.declaratorMap[v.Locator()] = id
	}
}
