package reflect_test

import (
	"testing"

	"github.com/modularml/spvreflect/internal/spvbuild"
	"github.com/modularml/spvreflect/reflect"
)

// minimumFragment builds the smallest legal fragment shader: one vec4 input,
// one vec4 output, loaded and stored straight through.
func minimumFragment() []byte {
	m := spvbuild.New()
	f32 := m.AddTypeFloat(32)
	vec4 := m.AddTypeVector(f32, 4)
	ptrIn := m.AddTypePointer(spvbuild.StorageInput, vec4)
	ptrOut := m.AddTypePointer(spvbuild.StorageOutput, vec4)
	vColor := m.AddVariable(ptrIn, spvbuild.StorageInput)
	oColor := m.AddVariable(ptrOut, spvbuild.StorageOutput)
	m.AddName(vColor, "v_color")
	m.AddName(oColor, "o_color")
	m.AddDecorate(vColor, spvbuild.DecorationLocation, 0)
	m.AddDecorate(oColor, spvbuild.DecorationLocation, 0)

	void := m.AddTypeVoid()
	fnType := m.AddTypeFunction(void)
	main := m.AddFunction(void, fnType)
	m.AddLabel()
	loaded := m.AddLoad(vec4, vColor)
	m.AddStore(oColor, loaded)
	m.AddReturn()
	m.AddFunctionEnd()

	m.AddEntryPoint(spvbuild.ExecModelFragment, main, "main", vColor, oColor)
	m.AddExecutionMode(main, spvbuild.ExecutionModeOriginUpperLeft)
	return m.Build()
}

func TestReflectMinimumFragment(t *testing.T) {
	eps, err := reflect.Reflect(minimumFragment(), reflect.DefaultOptions())
	if err != nil {
		t.Fatalf("Reflect: %v", err)
	}
	if len(eps) != 1 {
		t.Fatalf("got %d entry points, want 1", len(eps))
	}
	ep := eps[0]
	if ep.Name != "main" || ep.ExecutionModel != reflect.ExecutionModelFragment {
		t.Fatalf("unexpected entry point: %+v", ep)
	}
	if len(ep.ExecutionModes) != 1 || ep.ExecutionModes[0].Kind != reflect.EMOriginUpperLeft {
		t.Fatalf("unexpected execution modes: %+v", ep.ExecutionModes)
	}

	var sawIn, sawOut bool
	for _, v := range ep.Variables {
		switch v.Kind {
		case reflect.VarInput:
			sawIn = true
			if v.Name != "v_color" || v.Location.Location != 0 {
				t.Errorf("unexpected input: %+v", v)
			}
		case reflect.VarOutput:
			sawOut = true
			if v.Name != "o_color" || v.Location.Location != 0 {
				t.Errorf("unexpected output: %+v", v)
			}
		default:
			t.Errorf("unexpected variable kind %v", v.Kind)
		}
	}
	if !sawIn || !sawOut {
		t.Fatalf("missing input/output in %+v", ep.Variables)
	}
}

// uniformBlockModule builds a vertex shader with a single uniform block of
// two mat4x4 members (view, projection), referenced with the whole block
// loaded at once so reachability tracking sees it without needing member
// access chains.
func uniformBlockModule() (blob []byte, structID uint32) {
	m := spvbuild.New()
	f32 := m.AddTypeFloat(32)
	vec4 := m.AddTypeVector(f32, 4)
	mat4 := m.AddTypeMatrix(vec4, 4)
	st := m.AddTypeStruct(mat4, mat4)
	m.AddMemberDecorate(st, 0, spvbuild.DecorationOffset, 0)
	m.AddMemberDecorate(st, 0, spvbuild.DecorationMatrixStride, 16)
	m.AddMemberDecorate(st, 0, spvbuild.DecorationColMajor)
	m.AddMemberDecorate(st, 1, spvbuild.DecorationOffset, 64)
	m.AddMemberDecorate(st, 1, spvbuild.DecorationMatrixStride, 16)
	m.AddMemberDecorate(st, 1, spvbuild.DecorationColMajor)
	m.AddDecorate(st, spvbuild.DecorationBlock)

	ptr := m.AddTypePointer(spvbuild.StorageUniform, st)
	v := m.AddVariable(ptr, spvbuild.StorageUniform)
	m.AddName(v, "ubo")
	m.AddDecorate(v, spvbuild.DecorationDescriptorSet, 0)
	m.AddDecorate(v, spvbuild.DecorationBinding, 0)

	void := m.AddTypeVoid()
	fnType := m.AddTypeFunction(void)
	main := m.AddFunction(void, fnType)
	m.AddLabel()
	m.AddLoad(st, v)
	m.AddReturn()
	m.AddFunctionEnd()

	m.AddEntryPoint(spvbuild.ExecModelVertex, main, "main", v)
	return m.Build(), st
}

func TestReflectUniformBlock(t *testing.T) {
	blob, _ := uniformBlockModule()
	eps, err := reflect.Reflect(blob, reflect.DefaultOptions())
	if err != nil {
		t.Fatalf("Reflect: %v", err)
	}
	if len(eps) != 1 || len(eps[0].Variables) != 1 {
		t.Fatalf("unexpected entry points: %+v", eps)
	}
	v := eps[0].Variables[0]
	if v.Kind != reflect.VarDescriptor {
		t.Fatalf("want VarDescriptor, got %v", v.Kind)
	}
	if v.DescriptorType.Kind != reflect.DescUniformBuffer {
		t.Fatalf("want DescUniformBuffer, got %v", v.DescriptorType.Kind)
	}
	if v.Binding.Set != 0 || v.Binding.Binding != 0 {
		t.Fatalf("unexpected binding: %+v", v.Binding)
	}
	if v.BindingCount != 1 {
		t.Fatalf("want BindingCount 1, got %d", v.BindingCount)
	}
	st, ok := v.Type.(reflect.Struct)
	if !ok {
		t.Fatalf("want Struct type, got %T", v.Type)
	}
	if len(st.Members) != 2 {
		t.Fatalf("want 2 members, got %d", len(st.Members))
	}
	if st.Members[0].Offset != 0 || st.Members[1].Offset != 64 {
		t.Fatalf("unexpected member offsets: %+v", st.Members)
	}
	mat, ok := st.Members[0].Type.(reflect.Matrix)
	if !ok || mat.Stride != 16 || mat.Major != reflect.MajorColumn {
		t.Fatalf("unexpected member type: %+v", st.Members[0].Type)
	}
}

// storageBufferModule builds a storage buffer with a trailing runtime array
// of structs, decorated NonWritable (read-only access).
func storageBufferModule() []byte {
	m := spvbuild.New()
	f32 := m.AddTypeFloat(32)
	elem := m.AddTypeStruct(f32)
	m.AddMemberDecorate(elem, 0, spvbuild.DecorationOffset, 0)

	ra := m.AddTypeRuntimeArray(elem)
	m.AddDecorate(ra, spvbuild.DecorationArrayStride, 32)

	outer := m.AddTypeStruct(ra)
	m.AddMemberDecorate(outer, 0, spvbuild.DecorationOffset, 0)
	m.AddDecorate(outer, spvbuild.DecorationBufferBlock)

	ptr := m.AddTypePointer(spvbuild.StorageUniform, outer)
	v := m.AddVariable(ptr, spvbuild.StorageUniform)
	m.AddName(v, "particles")
	m.AddDecorate(v, spvbuild.DecorationNonWritable)
	m.AddDecorate(v, spvbuild.DecorationDescriptorSet, 0)
	m.AddDecorate(v, spvbuild.DecorationBinding, 1)

	void := m.AddTypeVoid()
	fnType := m.AddTypeFunction(void)
	main := m.AddFunction(void, fnType)
	m.AddLabel()
	m.AddLoad(outer, v)
	m.AddReturn()
	m.AddFunctionEnd()

	m.AddEntryPoint(spvbuild.ExecModelGLCompute, main, "main", v)
	return m.Build()
}

func TestReflectStorageBufferRuntimeArray(t *testing.T) {
	eps, err := reflect.Reflect(storageBufferModule(), reflect.DefaultOptions())
	if err != nil {
		t.Fatalf("Reflect: %v", err)
	}
	v := eps[0].Variables[0]
	if v.DescriptorType.Kind != reflect.DescStorageBuffer {
		t.Fatalf("want DescStorageBuffer, got %v", v.DescriptorType.Kind)
	}
	if v.DescriptorType.Access != reflect.AccessReadOnly {
		t.Fatalf("want AccessReadOnly, got %v", v.DescriptorType.Access)
	}
	st := v.Type.(reflect.Struct)
	arr, ok := st.Members[0].Type.(reflect.Array)
	if !ok {
		t.Fatalf("want Array member, got %T", st.Members[0].Type)
	}
	if arr.Count != 0 {
		t.Fatalf("want unsized array (Count 0), got %d", arr.Count)
	}
	if arr.Stride != 32 {
		t.Fatalf("want Stride 32, got %d", arr.Stride)
	}
}

// specConstantModule declares a spec constant A (id=7, default 4), folds
// A+3 via OpSpecConstantOp, and uses the fold result as an array length
// inside a bound storage-buffer descriptor.
func specConstantModule() []byte {
	m := spvbuild.New()
	u32 := m.AddTypeInt(32, false)
	specA := m.AddSpecConstantU32(u32, 7, 4)
	three := m.AddConstantU32(u32, 3)
	sum := m.AddSpecConstantOpIAdd(u32, specA, three)

	arr := m.AddTypeArray(u32, sum)
	outer := m.AddTypeStruct(arr)
	m.AddMemberDecorate(outer, 0, spvbuild.DecorationOffset, 0)
	m.AddDecorate(outer, spvbuild.DecorationBufferBlock)

	ptr := m.AddTypePointer(spvbuild.StorageUniform, outer)
	v := m.AddVariable(ptr, spvbuild.StorageUniform)
	m.AddDecorate(v, spvbuild.DecorationDescriptorSet, 0)
	m.AddDecorate(v, spvbuild.DecorationBinding, 0)

	void := m.AddTypeVoid()
	fnType := m.AddTypeFunction(void)
	main := m.AddFunction(void, fnType)
	m.AddLabel()
	m.AddLoad(outer, v)
	m.AddReturn()
	m.AddFunctionEnd()

	m.AddEntryPoint(spvbuild.ExecModelGLCompute, main, "main", v)
	return m.Build()
}

func TestReflectSpecConstantFolding(t *testing.T) {
	blob := specConstantModule()

	eps, err := reflect.Reflect(blob, reflect.DefaultOptions())
	if err != nil {
		t.Fatalf("Reflect: %v", err)
	}
	desc := eps[0].Variables[0]
	st := desc.Type.(reflect.Struct)
	arr := st.Members[0].Type.(reflect.Array)
	if arr.Count != 7 {
		t.Fatalf("want array length 7 (4+3), got %d", arr.Count)
	}
	var specCount int
	for _, v := range eps[0].Variables {
		if v.Kind == reflect.VarSpecConstant {
			specCount++
			if v.SpecID != 7 {
				t.Errorf("unexpected spec id %d", v.SpecID)
			}
		}
	}
	if specCount != 1 {
		t.Fatalf("want 1 outstanding spec constant, got %d", specCount)
	}

	overridden := reflect.DefaultOptions().Specialize(7, reflect.ConstantValue{Kind: reflect.ValueU32, U32: 10})
	eps2, err := reflect.Reflect(blob, overridden)
	if err != nil {
		t.Fatalf("Reflect with override: %v", err)
	}
	st2 := eps2[0].Variables[0].Type.(reflect.Struct)
	arr2 := st2.Members[0].Type.(reflect.Array)
	if arr2.Count != 13 {
		t.Fatalf("want array length 13 (10+3), got %d", arr2.Count)
	}
	for _, v := range eps2[0].Variables {
		if v.Kind == reflect.VarSpecConstant {
			t.Fatalf("spec constant A should be resolved, not outstanding: %+v", v)
		}
	}
}

// imageSamplerModule declares a separate sampled image and sampler at the
// same (set, binding), the shape image+sampler fusion is meant to pair up.
func imageSamplerModule() []byte {
	m := spvbuild.New()
	f32 := m.AddTypeFloat(32)
	img := m.AddTypeImage(f32, spvbuild.Dim2D, 0, 0, 0, 1, 0)
	ptrImg := m.AddTypePointer(spvbuild.StorageUniformConstant, img)
	vImg := m.AddVariable(ptrImg, spvbuild.StorageUniformConstant)
	m.AddName(vImg, "tex")
	m.AddDecorate(vImg, spvbuild.DecorationDescriptorSet, 0)
	m.AddDecorate(vImg, spvbuild.DecorationBinding, 0)

	sampler := m.AddTypeSampler()
	ptrSampler := m.AddTypePointer(spvbuild.StorageUniformConstant, sampler)
	vSampler := m.AddVariable(ptrSampler, spvbuild.StorageUniformConstant)
	m.AddName(vSampler, "samp")
	m.AddDecorate(vSampler, spvbuild.DecorationDescriptorSet, 0)
	m.AddDecorate(vSampler, spvbuild.DecorationBinding, 0)

	void := m.AddTypeVoid()
	fnType := m.AddTypeFunction(void)
	main := m.AddFunction(void, fnType)
	m.AddLabel()
	m.AddLoad(img, vImg)
	m.AddLoad(sampler, vSampler)
	m.AddReturn()
	m.AddFunctionEnd()

	m.AddEntryPoint(spvbuild.ExecModelFragment, main, "main", vImg, vSampler)
	return m.Build()
}

func TestReflectImageSamplerFusion(t *testing.T) {
	blob := imageSamplerModule()

	eps, err := reflect.Reflect(blob, reflect.DefaultOptions())
	if err != nil {
		t.Fatalf("Reflect: %v", err)
	}
	if len(eps[0].Variables) != 2 {
		t.Fatalf("want 2 separate descriptors without fusion, got %d", len(eps[0].Variables))
	}

	opts := reflect.DefaultOptions()
	opts.CombineImageSamplers = true
	fused, err := reflect.Reflect(blob, opts)
	if err != nil {
		t.Fatalf("Reflect with fusion: %v", err)
	}
	if len(fused[0].Variables) != 1 {
		t.Fatalf("want 1 fused descriptor, got %d", len(fused[0].Variables))
	}
	v := fused[0].Variables[0]
	if v.DescriptorType.Kind != reflect.DescCombinedImageSampler {
		t.Fatalf("want DescCombinedImageSampler, got %v", v.DescriptorType.Kind)
	}
	if _, ok := v.Type.(reflect.SampledImage); !ok {
		t.Fatalf("want SampledImage type, got %T", v.Type)
	}
}

// unreachableDescriptorModule declares two descriptors at bindings 0 and 1;
// only binding 0 is loaded from the entry point's function, binding 1 is
// loaded only from a helper function nothing ever calls.
func unreachableDescriptorModule() []byte {
	m := spvbuild.New()
	sampler := m.AddTypeSampler()
	ptr := m.AddTypePointer(spvbuild.StorageUniformConstant, sampler)

	vA := m.AddVariable(ptr, spvbuild.StorageUniformConstant)
	m.AddDecorate(vA, spvbuild.DecorationDescriptorSet, 0)
	m.AddDecorate(vA, spvbuild.DecorationBinding, 0)

	vB := m.AddVariable(ptr, spvbuild.StorageUniformConstant)
	m.AddDecorate(vB, spvbuild.DecorationDescriptorSet, 0)
	m.AddDecorate(vB, spvbuild.DecorationBinding, 1)

	void := m.AddTypeVoid()
	fnType := m.AddTypeFunction(void)

	helper := m.AddFunction(void, fnType)
	m.AddLabel()
	m.AddLoad(sampler, vB)
	m.AddReturn()
	m.AddFunctionEnd()

	main := m.AddFunction(void, fnType)
	m.AddLabel()
	m.AddLoad(sampler, vA)
	m.AddReturn()
	m.AddFunctionEnd()

	_ = helper // never called from main: binding 1 is unreachable
	m.AddEntryPoint(spvbuild.ExecModelFragment, main, "main", vA, vB)
	return m.Build()
}

func TestReflectUnreachableDescriptor(t *testing.T) {
	blob := unreachableDescriptorModule()

	eps, err := reflect.Reflect(blob, reflect.DefaultOptions())
	if err != nil {
		t.Fatalf("Reflect: %v", err)
	}
	if len(eps[0].Variables) != 1 {
		t.Fatalf("want 1 reachable descriptor, got %d: %+v", len(eps[0].Variables), eps[0].Variables)
	}
	if eps[0].Variables[0].Binding.Binding != 0 {
		t.Fatalf("want binding 0 reachable, got %+v", eps[0].Variables[0].Binding)
	}

	opts := reflect.DefaultOptions()
	opts.ReferenceAllResources = true
	all, err := reflect.Reflect(blob, opts)
	if err != nil {
		t.Fatalf("Reflect with reference_all_resources: %v", err)
	}
	if len(all[0].Variables) != 2 {
		t.Fatalf("want both descriptors with reference_all_resources, got %d", len(all[0].Variables))
	}
}

func TestReflectRejectsMisalignedBlob(t *testing.T) {
	_, err := reflect.Reflect([]byte{1, 2, 3}, reflect.DefaultOptions())
	if err == nil {
		t.Fatal("want error for non-word-aligned blob")
	}
	var rerr *reflect.Error
	if e, ok := err.(*reflect.Error); ok {
		rerr = e
	}
	if rerr == nil || rerr.Kind != reflect.KindCorruptedBinary {
		t.Fatalf("want KindCorruptedBinary, got %v", err)
	}
}
