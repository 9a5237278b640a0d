package reflect

// OpCode is a SPIR-V instruction opcode.
type OpCode uint16

// Opcodes this reflector decodes. Values match the Khronos SPIR-V spec.
const (
	opSource            OpCode = 3
	opName              OpCode = 5
	opMemberName        OpCode = 6
	opString            OpCode = 7
	opExtInstImport     OpCode = 11
	opMemoryModel       OpCode = 14
	opEntryPoint        OpCode = 15
	opExecutionMode     OpCode = 16
	opExecutionModeId   OpCode = 331
	opCapability        OpCode = 17
	opTypeVoid          OpCode = 19
	opTypeBool          OpCode = 20
	opTypeInt           OpCode = 21
	opTypeFloat         OpCode = 22
	opTypeVector        OpCode = 23
	opTypeMatrix        OpCode = 24
	opTypeImage         OpCode = 25
	opTypeSampler       OpCode = 26
	opTypeSampledImage  OpCode = 27
	opTypeArray         OpCode = 28
	opTypeRuntimeArray  OpCode = 29
	opTypeStruct        OpCode = 30
	opTypePointer       OpCode = 32
	opTypeFunction       OpCode = 33
	opTypeAccelStruct   OpCode = 5341
	opConstantTrue      OpCode = 41
	opConstantFalse     OpCode = 42
	opConstant          OpCode = 43
	opConstantComposite OpCode = 44
	opSpecConstantTrue      OpCode = 48
	opSpecConstantFalse     OpCode = 49
	opSpecConstant          OpCode = 50
	opSpecConstantComposite OpCode = 51
	opSpecConstantOp        OpCode = 52
	opFunction          OpCode = 54
	opFunctionParameter OpCode = 55
	opFunctionEnd       OpCode = 56
	opFunctionCall      OpCode = 57
	opVariable          OpCode = 59
	opLoad              OpCode = 61
	opStore             OpCode = 62
	opAccessChain       OpCode = 65
	opInBoundsAccessChain OpCode = 66
	opDecorate          OpCode = 71
	opMemberDecorate    OpCode = 72
	opControlBarrier    OpCode = 224
	opAtomicLoad        OpCode = 227
	opAtomicStore       OpCode = 228
	opAtomicExchange    OpCode = 229
	opAtomicCompareExchange OpCode = 230
	opAtomicIIncrement  OpCode = 232
	opAtomicIDecrement  OpCode = 233
	opAtomicIAdd        OpCode = 234
	opAtomicISub        OpCode = 235
	opAtomicSMin        OpCode = 236
	opAtomicUMin        OpCode = 237
	opAtomicSMax        OpCode = 238
	opAtomicUMax        OpCode = 239
	opAtomicAnd         OpCode = 240
	opAtomicOr          OpCode = 241
	opAtomicXor         OpCode = 242
	opLabel             OpCode = 248

	// Spec-constant-op opcodes this reflector knows how to fold.
	opSNegate              OpCode = 126
	opNot                  OpCode = 200
	opIAdd                 OpCode = 128
	opISub                 OpCode = 130
	opIMul                 OpCode = 132
	opUDiv                 OpCode = 134
	opSDiv                 OpCode = 135
	opUMod                 OpCode = 137
	opSRem                 OpCode = 138
	opSMod                 OpCode = 139
	opShiftRightLogical    OpCode = 194
	opShiftRightArithmetic OpCode = 195
	opShiftLeftLogical     OpCode = 196
	opBitwiseOr            OpCode = 197
	opBitwiseXor           OpCode = 198
	opBitwiseAnd           OpCode = 199
)

// Decoration identifies a SPIR-V decoration kind.
type Decoration uint32

const (
	DecorationSpecId               Decoration = 1
	DecorationBlock                Decoration = 2
	DecorationBufferBlock          Decoration = 3
	DecorationRowMajor             Decoration = 4
	DecorationColMajor             Decoration = 5
	DecorationArrayStride          Decoration = 6
	DecorationMatrixStride         Decoration = 7
	DecorationBuiltIn              Decoration = 11
	DecorationNonWritable          Decoration = 24
	DecorationNonReadable          Decoration = 25
	DecorationLocation             Decoration = 30
	DecorationComponent            Decoration = 31
	DecorationBinding              Decoration = 33
	DecorationDescriptorSet        Decoration = 34
	DecorationOffset               Decoration = 35
	DecorationInputAttachmentIndex Decoration = 43
)

// ExecutionModel is a SPIR-V execution model (pipeline stage).
type ExecutionModel uint32

const (
	ExecutionModelVertex                 ExecutionModel = 0
	ExecutionModelTessellationControl    ExecutionModel = 1
	ExecutionModelTessellationEvaluation ExecutionModel = 2
	ExecutionModelGeometry               ExecutionModel = 3
	ExecutionModelFragment               ExecutionModel = 4
	ExecutionModelGLCompute              ExecutionModel = 5
	ExecutionModelKernel                 ExecutionModel = 6
)

// StorageClass is a SPIR-V storage class.
type StorageClass uint32

const (
	StorageClassUniformConstant StorageClass = 0
	StorageClassInput           StorageClass = 1
	StorageClassUniform         StorageClass = 2
	StorageClassOutput          StorageClass = 3
	StorageClassWorkgroup       StorageClass = 4
	StorageClassCrossWorkgroup  StorageClass = 5
	StorageClassPrivate         StorageClass = 6
	StorageClassFunction        StorageClass = 7
	StorageClassGeneric         StorageClass = 8
	StorageClassPushConstant    StorageClass = 9
	StorageClassAtomicCounter   StorageClass = 10
	StorageClassImage           StorageClass = 11
	StorageClassStorageBuffer   StorageClass = 12
)

// execModeCode identifies the raw SPIR-V execution mode number.
type execModeCode uint32

const (
	emInvocations              execModeCode = 0
	emSpacingEqual             execModeCode = 1
	emSpacingFractionalEven    execModeCode = 2
	emSpacingFractionalOdd     execModeCode = 3
	emVertexOrderCw            execModeCode = 4
	emVertexOrderCcw           execModeCode = 5
	emPixelCenterInteger       execModeCode = 6
	emOriginUpperLeft          execModeCode = 7
	emOriginLowerLeft          execModeCode = 8
	emEarlyFragmentTests       execModeCode = 9
	emPointMode                execModeCode = 10
	emXfb                      execModeCode = 11
	emDepthReplacing           execModeCode = 12
	emDepthGreater             execModeCode = 14
	emDepthLess                execModeCode = 15
	emDepthUnchanged           execModeCode = 16
	emLocalSize                execModeCode = 17
	emInputPoints              execModeCode = 19
	emInputLines               execModeCode = 20
	emInputLinesAdjacency      execModeCode = 21
	emTriangles                execModeCode = 22
	emInputTrianglesAdjacency  execModeCode = 23
	emQuads                    execModeCode = 24
	emIsolines                 execModeCode = 25
	emOutputVertices           execModeCode = 26
	emOutputPoints             execModeCode = 27
	emOutputLineStrip          execModeCode = 28
	emOutputTriangleStrip      execModeCode = 29
	emInitializer              execModeCode = 33
	emFinalizer                execModeCode = 34
	emSubgroupSize             execModeCode = 35
	emSubgroupsPerWorkgroup    execModeCode = 36
	emSubgroupsPerWorkgroupId  execModeCode = 37
	emLocalSizeId              execModeCode = 38
	emPostDepthCoverage        execModeCode = 4446
	emStencilRefReplacingEXT   execModeCode = 5027
)

// imageDim mirrors the SPIR-V Dim operand of OpTypeImage.
type imageDim uint32

const (
	dim1D        imageDim = 0
	dim2D        imageDim = 1
	dim3D        imageDim = 2
	dimCube      imageDim = 3
	dimRect      imageDim = 4
	dimBuffer    imageDim = 5
	dimSubpassData imageDim = 6
)
