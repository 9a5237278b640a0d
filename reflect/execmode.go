package reflect

// ExecutionModeKind enumerates the recognised execution-mode taxonomy.
// Payload-carrying modes store their operand(s) in ExecutionMode's fields.
type ExecutionModeKind uint8

const (
	EMInvocations ExecutionModeKind = iota
	EMSpacingEqual
	EMSpacingFractionalEven
	EMSpacingFractionalOdd
	EMVertexOrderCw
	EMVertexOrderCcw
	EMPixelCenterInteger
	EMOriginUpperLeft
	EMOriginLowerLeft
	EMEarlyFragmentTests
	EMPointMode
	EMXfb
	EMDepthReplacing
	EMDepthGreater
	EMDepthLess
	EMDepthUnchanged
	EMLocalSize
	EMInputPoints
	EMInputLines
	EMInputLinesAdjacency
	EMTriangles
	EMInputTrianglesAdjacency
	EMQuads
	EMIsolines
	EMOutputVertices
	EMOutputPoints
	EMOutputLineStrip
	EMOutputTriangleStrip
	EMInitializer
	EMFinalizer
	EMSubgroupSize
	EMSubgroupsPerWorkgroup
	EMSubgroupsPerWorkgroupId
	EMLocalSizeId
	EMPostDepthCoverage
	EMStencilRefReplacingEXT
)

// ExecutionMode is one decoded OpExecutionMode/OpExecutionModeId. Operand
// carries whatever payload the mode has (LocalSize's x/y/z, Invocations'
// count, …); it is empty for modes with no operands. For LocalSizeId and
// SubgroupsPerWorkgroupId, Operand holds spec-ids rather than literal
// values.
type ExecutionMode struct {
	Kind    ExecutionModeKind
	Operand []uint32
}

var execModeTable = map[execModeCode]ExecutionModeKind{
	emInvocations:             EMInvocations,
	emSpacingEqual:            EMSpacingEqual,
	emSpacingFractionalEven:   EMSpacingFractionalEven,
	emSpacingFractionalOdd:    EMSpacingFractionalOdd,
	emVertexOrderCw:           EMVertexOrderCw,
	emVertexOrderCcw:          EMVertexOrderCcw,
	emPixelCenterInteger:      EMPixelCenterInteger,
	emOriginUpperLeft:         EMOriginUpperLeft,
	emOriginLowerLeft:         EMOriginLowerLeft,
	emEarlyFragmentTests:      EMEarlyFragmentTests,
	emPointMode:               EMPointMode,
	emXfb:                     EMXfb,
	emDepthReplacing:          EMDepthReplacing,
	emDepthGreater:            EMDepthGreater,
	emDepthLess:               EMDepthLess,
	emDepthUnchanged:          EMDepthUnchanged,
	emLocalSize:               EMLocalSize,
	emInputPoints:             EMInputPoints,
	emInputLines:              EMInputLines,
	emInputLinesAdjacency:     EMInputLinesAdjacency,
	emTriangles:               EMTriangles,
	emInputTrianglesAdjacency: EMInputTrianglesAdjacency,
	emQuads:                   EMQuads,
	emIsolines:                EMIsolines,
	emOutputVertices:          EMOutputVertices,
	emOutputPoints:            EMOutputPoints,
	emOutputLineStrip:         EMOutputLineStrip,
	emOutputTriangleStrip:     EMOutputTriangleStrip,
	emInitializer:             EMInitializer,
	emFinalizer:               EMFinalizer,
	emSubgroupSize:            EMSubgroupSize,
	emSubgroupsPerWorkgroup:   EMSubgroupsPerWorkgroup,
	emSubgroupsPerWorkgroupId: EMSubgroupsPerWorkgroupId,
	emLocalSizeId:             EMLocalSizeId,
	emPostDepthCoverage:       EMPostDepthCoverage,
	emStencilRefReplacingEXT:  EMStencilRefReplacingEXT,
}
