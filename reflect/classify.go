package reflect

// Descriptor classification turns a variable's storage class, pointee
// shape, and decorations into a DescriptorType, following a fixed
// storage-class/pointee-shape/decoration decision table.

// classifyDescorations is the subset of a variable's decoration
// state the classifier needs, gathered by the ingestion pass before calling
// classifyDescriptor.
type classifyDescorations struct {
	bufferBlock          bool
	nonWritable          bool
	nonReadable          bool
	inputAttachmentIndex uint32
	hasLocation          bool
}

// unwrapBindingCount extracts (count, element-type) from a pointee per
// Binding count rule: an Array unwraps to (N, element),
// N=0 meaning unbounded; anything else is (1, pointee) unchanged.
func unwrapBindingCount(pointee Type) (uint32, Type) {
	if arr, ok := pointee.(Array); ok {
		return arr.Count, arr.Element
	}
	return 1, pointee
}

// accessTypeFromDecorations derives a storage image/buffer's AccessType
// from the NonWritable/NonReadable decoration pair.
func accessTypeFromDecorations(nonWritable, nonReadable bool, id uint32) (AccessType, error) {
	switch {
	case nonWritable && nonReadable:
		return 0, newErrID(KindAccessConflict, "variable is both NonWritable and NonReadable", id)
	case nonWritable:
		return AccessReadOnly, nil
	case nonReadable:
		return AccessWriteOnly, nil
	default:
		return AccessReadWrite, nil
	}
}

// classifyDescriptor implements the descriptor classification table.
// pointee is the type after resolving the variable's pointer and after
// binding-count unwrapping (the caller passes the element type that
// unwrapBindingCount returns). id is the variable's result id, used for error
// reporting. It returns (descType, ok, err): ok is false when the variable
// falls into "other — silently ignored" (not a descriptor, not an error).
func classifyDescriptor(storage StorageClass, pointee Type, deco classifyDescorations, id uint32) (DescriptorType, bool, error) {
	switch storage {
	case StorageClassUniform:
		if deco.bufferBlock {
			access, err := accessTypeFromDecorations(deco.nonWritable, deco.nonReadable, id)
			if err != nil {
				return DescriptorType{}, false, err
			}
			return DescriptorType{Kind: DescStorageBuffer, Access: access}, true, nil
		}
		return DescriptorType{Kind: DescUniformBuffer}, true, nil

	case StorageClassStorageBuffer:
		access, err := accessTypeFromDecorations(deco.nonWritable, deco.nonReadable, id)
		if err != nil {
			return DescriptorType{}, false, err
		}
		return DescriptorType{Kind: DescStorageBuffer, Access: access}, true, nil

	case StorageClassUniformConstant:
		switch t := pointee.(type) {
		case Image:
			isBuffer := t.Arrangement.Dim == dimBuffer
			switch t.Unit {
			case ImageUnitColor:
				if isBuffer {
					access, err := accessTypeFromDecorations(deco.nonWritable, deco.nonReadable, id)
					if err != nil {
						return DescriptorType{}, false, err
					}
					return DescriptorType{Kind: DescStorageTexelBuffer, Access: access}, true, nil
				}
				access, err := accessTypeFromDecorations(deco.nonWritable, deco.nonReadable, id)
				if err != nil {
					return DescriptorType{}, false, err
				}
				return DescriptorType{Kind: DescStorageImage, Access: access}, true, nil
			case ImageUnitSampled:
				if isBuffer {
					return DescriptorType{Kind: DescUniformTexelBuffer}, true, nil
				}
				return DescriptorType{Kind: DescSampledImage}, true, nil
			case ImageUnitDepth:
				return DescriptorType{Kind: DescSampledImage}, true, nil
			}
			return DescriptorType{}, false, nil

		case Sampler:
			return DescriptorType{Kind: DescSampler}, true, nil

		case SampledImage:
			if t.Image.Arrangement.Dim == dimBuffer {
				return DescriptorType{Kind: DescUniformTexelBuffer}, true, nil
			}
			return DescriptorType{Kind: DescCombinedImageSampler}, true, nil

		case SubpassData:
			return DescriptorType{Kind: DescInputAttachment, InputAttachmentIndex: deco.inputAttachmentIndex}, true, nil

		case AccelStruct:
			return DescriptorType{Kind: DescAccelStruct}, true, nil

		default:
			return DescriptorType{}, false, nil
		}

	default:
		return DescriptorType{}, false, nil
	}
}

// isPushConstantCandidate reports whether storage/pointee matches the
// PushConstant row: storage class PushConstant and pointee a Struct.
func isPushConstantCandidate(storage StorageClass, pointee Type) bool {
	if storage != StorageClassPushConstant {
		return false
	}
	_, ok := pointee.(Struct)
	return ok
}

// isInterfaceCandidate reports whether storage/deco matches the
// Input/Output row: storage class Input or Output with a Location deco.
func isInterfaceCandidate(storage StorageClass, deco classifyDescorations) (VariableKind, bool) {
	switch storage {
	case StorageClassInput:
		return VarInput, deco.hasLocation
	case StorageClassOutput:
		return VarOutput, deco.hasLocation
	default:
		return 0, false
	}
}
