package reflect

// InterfaceLocation addresses an Input/Output variable by its Location and
// Component decorations.
type InterfaceLocation struct {
	Location  uint32
	Component uint32
}

// DescriptorBinding addresses a descriptor resource by Vulkan (set, binding).
type DescriptorBinding struct {
	Set     uint32
	Binding uint32
}

// Locator is the stable, externally-meaningful address of a Variable.
// Exactly one of its fields is populated, selected by Kind.
type Locator struct {
	Kind LocatorKind
	IO   InterfaceLocation // valid when Kind is LocatorInput/LocatorOutput
	Desc DescriptorBinding // valid when Kind is LocatorDescriptor
	Spec uint32            // valid when Kind is LocatorSpecConstant
}

// LocatorKind discriminates a Locator's addressing scheme.
type LocatorKind uint8

const (
	LocatorInput LocatorKind = iota
	LocatorOutput
	LocatorDescriptor
	LocatorPushConstant
	LocatorSpecConstant
)

// AccessType is the read/write capability of a storage image or buffer,
// derived from the NonReadable/NonWritable decoration pair.
type AccessType uint8

const (
	AccessReadWrite AccessType = iota
	AccessReadOnly
	AccessWriteOnly
)

// DescriptorTypeKind names the Vulkan-style descriptor taxonomy a Descriptor
// variable is classified into.
type DescriptorTypeKind uint8

const (
	DescSampler DescriptorTypeKind = iota
	DescCombinedImageSampler
	DescSampledImage
	DescStorageImage
	DescUniformTexelBuffer
	DescStorageTexelBuffer
	DescUniformBuffer
	DescStorageBuffer
	DescInputAttachment
	DescAccelStruct
)

// DescriptorType is a classified descriptor's Vulkan type plus whatever
// extra datum that type carries (an access mode, or an attachment index).
type DescriptorType struct {
	Kind                 DescriptorTypeKind
	Access               AccessType // meaningful for StorageImage/StorageBuffer/StorageTexelBuffer
	InputAttachmentIndex uint32     // meaningful for DescInputAttachment
}

// VariableKind discriminates the Variable union.
type VariableKind uint8

const (
	VarInput VariableKind = iota
	VarOutput
	VarDescriptor
	VarPushConstant
	VarSpecConstant
)

// Variable is a recognised SPIR-V global: an interface variable, a
// descriptor resource, a push-constant block, or a specialization constant.
type Variable struct {
	Kind VariableKind
	Name string // empty if undecorated with OpName

	// VarInput / VarOutput
	Location InterfaceLocation

	// VarDescriptor
	Binding        DescriptorBinding
	DescriptorType DescriptorType
	// BindingCount is the number of descriptors at Binding; 0 means
	// runtime/unbounded (an unsized array binding).
	BindingCount uint32

	// VarSpecConstant
	SpecID uint32

	Type Type
}

// Locator returns the stable address by which this variable is identified.
func (v Variable) Locator() Locator {
	switch v.Kind {
	case VarInput:
		return Locator{Kind: LocatorInput, IO: v.Location}
	case VarOutput:
		return Locator{Kind: LocatorOutput, IO: v.Location}
	case VarDescriptor:
		return Locator{Kind: LocatorDescriptor, Desc: v.Binding}
	case VarPushConstant:
		return Locator{Kind: LocatorPushConstant}
	case VarSpecConstant:
		return Locator{Kind: LocatorSpecConstant, Spec: v.SpecID}
	default:
		return Locator{}
	}
}

// Walk enumerates this variable's type in post-order.
func (v Variable) Walk() []WalkEntry {
	return Walk(v.Type)
}
