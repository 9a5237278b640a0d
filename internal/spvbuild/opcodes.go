package spvbuild

// Raw SPIR-V opcode and enum values needed to assemble fixtures. Kept
// separate from reflect's own opcodes.go since that package's opcode
// constants are unexported — this builder is a distinct concern (encoding, not decoding),
// so the numeric values are restated here and must stay in sync by hand.
const (
	opCapability       uint16 = 17
	opMemoryModel      uint16 = 14
	opEntryPoint       uint16 = 15
	opExecutionMode    uint16 = 16
	opName             uint16 = 5
	opMemberName       uint16 = 6
	opDecorate         uint16 = 71
	opMemberDecorate   uint16 = 72
	opTypeVoid         uint16 = 19
	opTypeBool         uint16 = 20
	opTypeInt          uint16 = 21
	opTypeFloat        uint16 = 22
	opTypeVector       uint16 = 23
	opTypeMatrix       uint16 = 24
	opTypeImage        uint16 = 25
	opTypeSampler      uint16 = 26
	opTypeSampledImage uint16 = 27
	opTypeArray        uint16 = 28
	opTypeRuntimeArray uint16 = 29
	opTypeStruct       uint16 = 30
	opTypePointer      uint16 = 32
	opTypeFunction     uint16 = 33
	opTypeAccelStruct  uint16 = 5341
	opConstantTrue     uint16 = 41
	opConstantFalse    uint16 = 42
	opConstant         uint16 = 43
	opSpecConstant     uint16 = 50
	opSpecConstantOp   uint16 = 52
	opFunction         uint16 = 54
	opFunctionCall     uint16 = 57
	opVariable         uint16 = 59
	opLoad             uint16 = 61
	opStore            uint16 = 62
	opAccessChain      uint16 = 65
	opLabel            uint16 = 248
	opReturn           uint16 = 253
	opFunctionEnd      uint16 = 56

	opIAdd uint32 = 128

	decorationSpecId uint32 = 1
)

// Capability, AddressingModel, MemoryModel, ExecutionModel, StorageClass
// mirror SPIR-V's own public enums, trimmed to the values fixtures need.
type (
	Capability      uint32
	AddressingModel uint32
	MemoryModel     uint32
	ExecutionModel  uint32
	StorageClass    uint32
)

const (
	CapabilityShader Capability = 1
)

const (
	AddressingLogical AddressingModel = 0
)

const (
	MemoryModelGLSL450 MemoryModel = 1
)

const (
	ExecModelVertex    ExecutionModel = 0
	ExecModelFragment  ExecutionModel = 4
	ExecModelGLCompute ExecutionModel = 5
)

const (
	StorageUniformConstant StorageClass = 0
	StorageInput           StorageClass = 1
	StorageUniform         StorageClass = 2
	StorageOutput          StorageClass = 3
	StoragePushConstant    StorageClass = 9
	StorageStorageBuffer   StorageClass = 12
)

// Decoration values fixtures decorate with.
const (
	DecorationBlock                uint32 = 2
	DecorationBufferBlock          uint32 = 3
	DecorationRowMajor             uint32 = 4
	DecorationColMajor             uint32 = 5
	DecorationArrayStride          uint32 = 6
	DecorationMatrixStride         uint32 = 7
	DecorationNonWritable          uint32 = 24
	DecorationNonReadable          uint32 = 25
	DecorationLocation             uint32 = 30
	DecorationComponent            uint32 = 31
	DecorationBinding              uint32 = 33
	DecorationDescriptorSet        uint32 = 34
	DecorationOffset               uint32 = 35
	DecorationInputAttachmentIndex uint32 = 43
)

// Execution modes fixtures declare.
const (
	ExecutionModeOriginUpperLeft uint32 = 7
	ExecutionModeLocalSize       uint32 = 17
)

// Image dimensions fixtures build with.
const (
	Dim2D          uint32 = 1
	DimBuffer      uint32 = 5
	DimSubpassData uint32 = 6
)
