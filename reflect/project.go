package reflect

import (
	"fmt"
	"sort"
)

// project turns the populated intermediate into the public EntryPoint list.
// Reachability runs as a depth-first search over each function's accessed
// variables and callees, deduplicated via a set; fusion and name uniquing
// run afterward as optional passes over the projected variable list.
func project(im *intermediate, opts resolvedOptions) ([]EntryPoint, error) {
	result := make([]EntryPoint, 0, len(im.entryPoints))
	for _, ep := range im.entryPoints {
		vars := im.projectVariables(ep.funcID, opts)
		if opts.combineImageSamplers {
			vars = fuseImageSamplers(vars)
		}
		if opts.generateUniqueNames {
			uniqueNames(vars)
		}
		result = append(result, EntryPoint{
			Name:           ep.name,
			ExecutionModel: ep.model,
			Variables:      vars,
			ExecutionModes: im.execModes[ep.funcID],
		})
	}
	return result, nil
}

// projectVariables gathers the Input/Output/Descriptor/PushConstant
// variables reachable from entryFunc (or all known ones, in reference-all
// mode) plus every specialization constant with an outstanding spec-id.
// Output order is the variables by ascending id, followed by the spec
// constants by ascending id, which is deterministic even though only the
// unordered contents are required to match.
func (im *intermediate) projectVariables(entryFunc uint32, opts resolvedOptions) []Variable {
	var accessed map[uint32]bool
	if !opts.referenceAllResources {
		accessed = im.reachableVars(entryFunc)
	}

	ids := make([]uint32, 0, len(im.variableIndex))
	for id := range im.variableIndex {
		if accessed != nil && !accessed[id] {
			continue
		}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]Variable, 0, len(ids))
	for _, id := range ids {
		out = append(out, im.variables[im.variableIndex[id]])
	}

	specIDs := make([]uint32, 0)
	for id, c := range im.constants {
		if c.specID != nil {
			specIDs = append(specIDs, id)
		}
	}
	sort.Slice(specIDs, func(i, j int) bool { return specIDs[i] < specIDs[j] })
	for _, id := range specIDs {
		c := im.constants[id]
		out = append(out, Variable{
			Kind:   VarSpecConstant,
			Name:   im.names[id],
			SpecID: *c.specID,
			Type:   scalarTypeOfValue(c.value),
		})
	}
	return out
}

// reachableVars is the DFS union of accessed-variable sets over the call
// graph rooted at entryFunc; visitedFuncs guards against revisiting a
// function reached by more than one call path.
func (im *intermediate) reachableVars(entryFunc uint32) map[uint32]bool {
	visitedFuncs := map[uint32]bool{}
	accessed := map[uint32]bool{}
	var visit func(fn uint32)
	visit = func(fn uint32) {
		if visitedFuncs[fn] {
			return
		}
		visitedFuncs[fn] = true
		info := im.functions[fn]
		if info == nil {
			return
		}
		for v := range info.accessedVars {
			accessed[v] = true
		}
		for callee := range info.callees {
			visit(callee)
		}
	}
	visit(entryFunc)
	return accessed
}

func scalarTypeOfValue(v ConstantValue) Type {
	switch v.Kind {
	case ValueI32:
		return Scalar{Kind: ScalarSigned, Width: 4}
	case ValueU32:
		return Scalar{Kind: ScalarUnsigned, Width: 4}
	case ValueF32:
		return Scalar{Kind: ScalarFloat, Width: 4}
	case ValueI64:
		return Scalar{Kind: ScalarSigned, Width: 8}
	case ValueU64:
		return Scalar{Kind: ScalarUnsigned, Width: 8}
	case ValueF64:
		return Scalar{Kind: ScalarFloat, Width: 8}
	default:
		return Scalar{Kind: ScalarBoolean}
	}
}

// fuseImageSamplers implements the opt-in sampler/sampled-image fusion: every sampler
// is paired with each sampled-image sharing its (set, binding) and
// binding-count, producing a CombinedImageSampler; unmatched descriptors of
// either kind pass through unchanged.
func fuseImageSamplers(vars []Variable) []Variable {
	var samplerIdx, imageIdx []int
	for i, v := range vars {
		if v.Kind != VarDescriptor {
			continue
		}
		switch v.DescriptorType.Kind {
		case DescSampler:
			samplerIdx = append(samplerIdx, i)
		case DescSampledImage:
			imageIdx = append(imageIdx, i)
		}
	}

	usedSampler := map[int]bool{}
	usedImage := map[int]bool{}
	out := make([]Variable, 0, len(vars))

	for _, si := range samplerIdx {
		s := vars[si]
		for _, ii := range imageIdx {
			img := vars[ii]
			if img.Binding != s.Binding || img.BindingCount != s.BindingCount {
				continue
			}
			imgType, ok := img.Type.(Image)
			if !ok {
				continue
			}
			out = append(out, Variable{
				Kind:           VarDescriptor,
				Name:           pickFusedName(s.Name, img.Name),
				Binding:        s.Binding,
				DescriptorType: DescriptorType{Kind: DescCombinedImageSampler},
				BindingCount:   s.BindingCount,
				Type:           SampledImage{Image: imgType},
			})
			usedSampler[si] = true
			usedImage[ii] = true
		}
	}

	for i, v := range vars {
		if usedSampler[i] || usedImage[i] {
			continue
		}
		out = append(out, v)
	}
	return out
}

func pickFusedName(samplerName, imageName string) string {
	if samplerName != "" {
		return samplerName
	}
	return imageName
}

// uniqueNames deterministically disambiguates duplicate variable names by
// appending "#n" (n starting at 2) to every repeat occurrence, in the
// order vars already carries.
func uniqueNames(vars []Variable) {
	seen := map[string]int{}
	for i := range vars {
		name := vars[i].Name
		if name == "" {
			continue
		}
		seen[name]++
		if seen[name] > 1 {
			vars[i].Name = fmt.Sprintf("%s#%d", name, seen[name])
		}
	}
}
