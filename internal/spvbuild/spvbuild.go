// Package spvbuild assembles synthetic SPIR-V binaries by hand, for use as
// test fixtures by the reflect package. A compiler backend would emit SPIR-V
// from compiled IR; this builder emits it directly, one instruction call at
// a time, since reflection tests need hand-shaped binaries rather than a
// compiler pipeline.
package spvbuild

import (
	"encoding/binary"
	"math"
)

const magicNumber uint32 = 0x07230203

// instruction is one not-yet-encoded SPIR-V instruction: an opcode plus its
// operand words (result-type/result-id included, same convention as the
// SPIR-V binary encoding).
type instruction struct {
	opcode uint16
	words  []uint32
}

func (i instruction) encode() []uint32 {
	wordCount := uint32(len(i.words) + 1)
	out := make([]uint32, 0, wordCount)
	out = append(out, (wordCount<<16)|uint32(i.opcode))
	out = append(out, i.words...)
	return out
}

// wordsBuilder accumulates one instruction's operand words.
type wordsBuilder struct {
	words []uint32
}

func (b *wordsBuilder) word(w uint32) *wordsBuilder {
	b.words = append(b.words, w)
	return b
}

func (b *wordsBuilder) words32(ws ...uint32) *wordsBuilder {
	b.words = append(b.words, ws...)
	return b
}

func (b *wordsBuilder) str(s string) *wordsBuilder {
	bytes := []byte(s)
	bytes = append(bytes, 0)
	for len(bytes)%4 != 0 {
		bytes = append(bytes, 0)
	}
	for i := 0; i < len(bytes); i += 4 {
		w := uint32(bytes[i]) | uint32(bytes[i+1])<<8 | uint32(bytes[i+2])<<16 | uint32(bytes[i+3])<<24
		b.words = append(b.words, w)
	}
	return b
}

func (b *wordsBuilder) build(opcode uint16) instruction {
	return instruction{opcode: opcode, words: b.words}
}

// Module builds a complete SPIR-V binary section by section, in the order
// the SPIR-V logical layout requires.
type Module struct {
	nextID uint32

	capabilities   []instruction
	memoryModel    *instruction
	entryPoints    []instruction
	executionModes []instruction
	debugNames     []instruction
	annotations    []instruction
	definitions    []instruction // OpType*, OpConstant*, OpSpecConstant*, OpVariable (global)
	functions      []instruction
}

// New creates an empty module with Shader capability and the Logical/GLSL450
// memory model already set, since every fixture needs them.
func New() *Module {
	m := &Module{nextID: 1}
	m.AddCapability(CapabilityShader)
	m.SetMemoryModel(AddressingLogical, MemoryModelGLSL450)
	return m
}

func (m *Module) allocID() uint32 {
	id := m.nextID
	m.nextID++
	return id
}

func (m *Module) AddCapability(cap Capability) {
	b := &wordsBuilder{}
	b.word(uint32(cap))
	m.capabilities = append(m.capabilities, b.build(opCapability))
}

func (m *Module) SetMemoryModel(addressing AddressingModel, model MemoryModel) {
	b := &wordsBuilder{}
	b.word(uint32(addressing)).word(uint32(model))
	inst := b.build(opMemoryModel)
	m.memoryModel = &inst
}

func (m *Module) AddEntryPoint(model ExecutionModel, funcID uint32, name string, interfaces ...uint32) {
	b := &wordsBuilder{}
	b.word(uint32(model)).word(funcID).str(name).words32(interfaces...)
	m.entryPoints = append(m.entryPoints, b.build(opEntryPoint))
}

func (m *Module) AddExecutionMode(entryFunc uint32, mode uint32, operands ...uint32) {
	b := &wordsBuilder{}
	b.word(entryFunc).word(mode).words32(operands...)
	m.executionModes = append(m.executionModes, b.build(opExecutionMode))
}

func (m *Module) AddName(id uint32, name string) {
	b := &wordsBuilder{}
	b.word(id).str(name)
	m.debugNames = append(m.debugNames, b.build(opName))
}

func (m *Module) AddMemberName(structID, member uint32, name string) {
	b := &wordsBuilder{}
	b.word(structID).word(member).str(name)
	m.debugNames = append(m.debugNames, b.build(opMemberName))
}

func (m *Module) AddDecorate(id uint32, deco uint32, operands ...uint32) {
	b := &wordsBuilder{}
	b.word(id).word(deco).words32(operands...)
	m.annotations = append(m.annotations, b.build(opDecorate))
}

func (m *Module) AddMemberDecorate(structID, member uint32, deco uint32, operands ...uint32) {
	b := &wordsBuilder{}
	b.word(structID).word(member).word(deco).words32(operands...)
	m.annotations = append(m.annotations, b.build(opMemberDecorate))
}

func (m *Module) AddTypeVoid() uint32 {
	id := m.allocID()
	b := &wordsBuilder{}
	b.word(id)
	m.definitions = append(m.definitions, b.build(opTypeVoid))
	return id
}

func (m *Module) AddTypeBool() uint32 {
	id := m.allocID()
	b := &wordsBuilder{}
	b.word(id)
	m.definitions = append(m.definitions, b.build(opTypeBool))
	return id
}

func (m *Module) AddTypeInt(width uint32, signed bool) uint32 {
	id := m.allocID()
	b := &wordsBuilder{}
	s := uint32(0)
	if signed {
		s = 1
	}
	b.word(id).word(width).word(s)
	m.definitions = append(m.definitions, b.build(opTypeInt))
	return id
}

func (m *Module) AddTypeFloat(width uint32) uint32 {
	id := m.allocID()
	b := &wordsBuilder{}
	b.word(id).word(width)
	m.definitions = append(m.definitions, b.build(opTypeFloat))
	return id
}

func (m *Module) AddTypeVector(compType uint32, count uint32) uint32 {
	id := m.allocID()
	b := &wordsBuilder{}
	b.word(id).word(compType).word(count)
	m.definitions = append(m.definitions, b.build(opTypeVector))
	return id
}

func (m *Module) AddTypeMatrix(colType uint32, colCount uint32) uint32 {
	id := m.allocID()
	b := &wordsBuilder{}
	b.word(id).word(colType).word(colCount)
	m.definitions = append(m.definitions, b.build(opTypeMatrix))
	return id
}

// AddTypeImage adds OpTypeImage. format may be 0 (Unknown) for sampled images.
func (m *Module) AddTypeImage(sampledType uint32, dim uint32, depth, arrayed, ms, sampled, format uint32) uint32 {
	id := m.allocID()
	b := &wordsBuilder{}
	b.word(id).word(sampledType).word(dim).word(depth).word(arrayed).word(ms).word(sampled).word(format)
	m.definitions = append(m.definitions, b.build(opTypeImage))
	return id
}

func (m *Module) AddTypeSampler() uint32 {
	id := m.allocID()
	b := &wordsBuilder{}
	b.word(id)
	m.definitions = append(m.definitions, b.build(opTypeSampler))
	return id
}

func (m *Module) AddTypeSampledImage(imageType uint32) uint32 {
	id := m.allocID()
	b := &wordsBuilder{}
	b.word(id).word(imageType)
	m.definitions = append(m.definitions, b.build(opTypeSampledImage))
	return id
}

func (m *Module) AddTypeArray(elemType, lengthConstID uint32) uint32 {
	id := m.allocID()
	b := &wordsBuilder{}
	b.word(id).word(elemType).word(lengthConstID)
	m.definitions = append(m.definitions, b.build(opTypeArray))
	return id
}

func (m *Module) AddTypeRuntimeArray(elemType uint32) uint32 {
	id := m.allocID()
	b := &wordsBuilder{}
	b.word(id).word(elemType)
	m.definitions = append(m.definitions, b.build(opTypeRuntimeArray))
	return id
}

func (m *Module) AddTypeStruct(memberTypes ...uint32) uint32 {
	id := m.allocID()
	b := &wordsBuilder{}
	b.word(id).words32(memberTypes...)
	m.definitions = append(m.definitions, b.build(opTypeStruct))
	return id
}

func (m *Module) AddTypePointer(storage StorageClass, pointee uint32) uint32 {
	id := m.allocID()
	b := &wordsBuilder{}
	b.word(id).word(uint32(storage)).word(pointee)
	m.definitions = append(m.definitions, b.build(opTypePointer))
	return id
}

func (m *Module) AddTypeFunction(returnType uint32, paramTypes ...uint32) uint32 {
	id := m.allocID()
	b := &wordsBuilder{}
	b.word(id).word(returnType).words32(paramTypes...)
	m.definitions = append(m.definitions, b.build(opTypeFunction))
	return id
}

func (m *Module) AddTypeAccelStruct() uint32 {
	id := m.allocID()
	b := &wordsBuilder{}
	b.word(id)
	m.definitions = append(m.definitions, b.build(opTypeAccelStruct))
	return id
}

func (m *Module) AddConstantU32(typeID uint32, value uint32) uint32 {
	id := m.allocID()
	b := &wordsBuilder{}
	b.word(typeID).word(id).word(value)
	m.definitions = append(m.definitions, b.build(opConstant))
	return id
}

func (m *Module) AddConstantF32(typeID uint32, value float32) uint32 {
	return m.AddConstantU32(typeID, math.Float32bits(value))
}

func (m *Module) AddConstantBool(typeID uint32, value bool) uint32 {
	id := m.allocID()
	b := &wordsBuilder{}
	b.word(typeID).word(id)
	op := opConstantFalse
	if value {
		op = opConstantTrue
	}
	m.definitions = append(m.definitions, b.build(op))
	return id
}

// AddSpecConstantU32 adds a scalar OpSpecConstant with a SpecId decoration.
func (m *Module) AddSpecConstantU32(typeID uint32, specID, value uint32) uint32 {
	id := m.allocID()
	b := &wordsBuilder{}
	b.word(typeID).word(id).word(value)
	m.definitions = append(m.definitions, b.build(opSpecConstant))
	m.AddDecorate(id, decorationSpecId, specID)
	return id
}

// AddSpecConstantOpIAdd adds OpSpecConstantOp performing IAdd over lhs and rhs.
func (m *Module) AddSpecConstantOpIAdd(typeID, lhs, rhs uint32) uint32 {
	id := m.allocID()
	b := &wordsBuilder{}
	b.word(typeID).word(id).word(opIAdd).word(lhs).word(rhs)
	m.definitions = append(m.definitions, b.build(opSpecConstantOp))
	return id
}

func (m *Module) AddVariable(pointerType uint32, storage StorageClass) uint32 {
	id := m.allocID()
	b := &wordsBuilder{}
	b.word(pointerType).word(id).word(uint32(storage))
	m.definitions = append(m.definitions, b.build(opVariable))
	return id
}

func (m *Module) AddFunction(returnType, funcType uint32) uint32 {
	id := m.allocID()
	b := &wordsBuilder{}
	b.word(returnType).word(id).word(0).word(funcType)
	m.functions = append(m.functions, b.build(opFunction))
	return id
}

func (m *Module) AddLabel() uint32 {
	id := m.allocID()
	b := &wordsBuilder{}
	b.word(id)
	m.functions = append(m.functions, b.build(opLabel))
	return id
}

func (m *Module) AddFunctionCall(resultType, callee uint32, args ...uint32) uint32 {
	id := m.allocID()
	b := &wordsBuilder{}
	b.word(resultType).word(id).word(callee).words32(args...)
	m.functions = append(m.functions, b.build(opFunctionCall))
	return id
}

func (m *Module) AddLoad(resultType, pointer uint32) uint32 {
	id := m.allocID()
	b := &wordsBuilder{}
	b.word(resultType).word(id).word(pointer)
	m.functions = append(m.functions, b.build(opLoad))
	return id
}

func (m *Module) AddStore(pointer, value uint32) {
	b := &wordsBuilder{}
	b.word(pointer).word(value)
	m.functions = append(m.functions, b.build(opStore))
}

func (m *Module) AddAccessChain(resultType, base uint32, indices ...uint32) uint32 {
	id := m.allocID()
	b := &wordsBuilder{}
	b.word(resultType).word(id).word(base).words32(indices...)
	m.functions = append(m.functions, b.build(opAccessChain))
	return id
}

func (m *Module) AddReturn() {
	m.functions = append(m.functions, instruction{opcode: opReturn})
}

func (m *Module) AddFunctionEnd() {
	m.functions = append(m.functions, instruction{opcode: opFunctionEnd})
}

// Build assembles the final SPIR-V binary: 5-word header followed by every
// section in SPIR-V's required order.
func (m *Module) Build() []byte {
	bound := m.nextID

	var words []uint32
	words = append(words, magicNumber, 0x00010300, 0, bound, 0)
	for _, i := range m.capabilities {
		words = append(words, i.encode()...)
	}
	if m.memoryModel != nil {
		words = append(words, m.memoryModel.encode()...)
	}
	for _, group := range [][]instruction{
		m.entryPoints, m.executionModes, m.debugNames, m.annotations,
		m.definitions, m.functions,
	} {
		for _, i := range group {
			words = append(words, i.encode()...)
		}
	}

	out := make([]byte, len(words)*4)
	for i, w := range words {
		binary.LittleEndian.PutUint32(out[i*4:], w)
	}
	return out
}
