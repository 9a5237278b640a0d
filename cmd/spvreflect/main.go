// Command spvreflect reflects SPIR-V binaries into shader-interface
// metadata and prints it as JSON.
//
// Usage:
//
//	spvreflect [options] <file.spv> [file2.spv ...]
//
// Examples:
//
//	spvreflect shader.spv                              # reflect, print JSON
//	spvreflect -ref-all-rscs shader.spv                # bypass reachability
//	spvreflect -combine-image-samplers shader.spv      # fuse sampler pairs
//	spvreflect -spec 7=10 -spec 12=1 shader.spv        # override spec consts
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/modularml/spvreflect/reflect"
)

type specOverrides struct {
	values map[uint32]reflect.ConstantValue
}

func (s *specOverrides) String() string {
	if s == nil || len(s.values) == 0 {
		return ""
	}
	return fmt.Sprintf("%d override(s)", len(s.values))
}

func (s *specOverrides) Set(raw string) error {
	id, value, ok := strings.Cut(raw, "=")
	if !ok {
		return fmt.Errorf("expected id=value, got %q", raw)
	}
	specID, err := strconv.ParseUint(id, 10, 32)
	if err != nil {
		return fmt.Errorf("bad spec id %q: %w", id, err)
	}
	if s.values == nil {
		s.values = map[uint32]reflect.ConstantValue{}
	}
	s.values[uint32(specID)] = parseScalarLiteral(value)
	return nil
}

// parseScalarLiteral parses a CLI spec-constant override without knowing the
// spec constant's declared scalar kind ahead of time: a literal containing a
// decimal point or exponent parses as float32, otherwise it tries signed
// int32, then unsigned int32, then unsigned int64.
func parseScalarLiteral(s string) reflect.ConstantValue {
	if f, err := strconv.ParseFloat(s, 64); err == nil && strings.ContainsAny(s, ".eE") {
		return reflect.ConstantValue{Kind: reflect.ValueF32, F32: float32(f)}
	}
	if i, err := strconv.ParseInt(s, 10, 32); err == nil {
		return reflect.ConstantValue{Kind: reflect.ValueI32, I32: int32(i)}
	}
	if u, err := strconv.ParseUint(s, 10, 32); err == nil {
		return reflect.ConstantValue{Kind: reflect.ValueU32, U32: uint32(u)}
	}
	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		return reflect.ConstantValue{Kind: reflect.ValueU64, U64: u}
	}
	return reflect.ConstantValue{}
}

var (
	refAllRscs     = flag.Bool("ref-all-rscs", false, "emit every recognised variable, bypassing reachability filtering")
	combineImgSamp = flag.Bool("combine-image-samplers", false, "fuse same-binding sampler/sampled-image pairs")
	genUniqueNames = flag.Bool("gen-unique-names", false, "deterministically disambiguate duplicate variable names")
	versionFlag    = flag.Bool("version", false, "print version")
	overrides      specOverrides
)

func version() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			return info.Main.Version
		}
	}
	return "dev"
}

func main() {
	flag.Var(&overrides, "spec", "override a specialization constant, id=value (repeatable)")
	flag.Usage = usage
	flag.Parse()

	if *versionFlag {
		fmt.Printf("spvreflect version %s\n", version())
		return
	}

	paths := flag.Args()
	if len(paths) < 1 {
		fmt.Fprintln(os.Stderr, "Error: no input file specified")
		usage()
		os.Exit(1)
	}

	opts := reflect.DefaultOptions()
	opts.ReferenceAllResources = *refAllRscs
	opts.CombineImageSamplers = *combineImgSamp
	opts.GenerateUniqueNames = *genUniqueNames
	for specID, v := range overrides.values {
		opts = opts.Specialize(specID, v)
	}

	exit := 0
	for _, path := range paths {
		if err := reflectOne(path, opts, len(paths) > 1); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", path, err)
			exit = 1
		}
	}
	os.Exit(exit)
}

func reflectOne(path string, opts reflect.Options, announce bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if announce {
		fmt.Fprintf(os.Stderr, "reflecting %s (%d bytes)\n", path, len(data))
	}

	eps, err := reflect.Reflect(data, opts)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonEntryPoints(eps))
}

// jsonEntryPoints reshapes []reflect.EntryPoint into the field layout this
// CLI emits: one Inputs/Outputs/Descriptors/PushConstants/SpecConstants
// bucket per entry point, instead of a flat Variables slice.
func jsonEntryPoints(eps []reflect.EntryPoint) []jsonEntryPoint {
	out := make([]jsonEntryPoint, len(eps))
	for i, ep := range eps {
		jep := jsonEntryPoint{
			EntryPoint:     ep.Name,
			ExecutionModel: ep.ExecutionModel,
			ExecutionModes: ep.ExecutionModes,
		}
		for _, v := range ep.Variables {
			switch v.Kind {
			case reflect.VarInput:
				jep.Variables.Inputs = append(jep.Variables.Inputs, v)
			case reflect.VarOutput:
				jep.Variables.Outputs = append(jep.Variables.Outputs, v)
			case reflect.VarDescriptor:
				jep.Variables.Descriptors = append(jep.Variables.Descriptors, v)
			case reflect.VarPushConstant:
				jep.Variables.PushConstants = append(jep.Variables.PushConstants, v)
			case reflect.VarSpecConstant:
				jep.Variables.SpecConstants = append(jep.Variables.SpecConstants, v)
			}
		}
		out[i] = jep
	}
	return out
}

type jsonEntryPoint struct {
	EntryPoint     string                  `json:"EntryPoint"`
	ExecutionModel reflect.ExecutionModel  `json:"ExecutionModel"`
	ExecutionModes []reflect.ExecutionMode `json:"ExecutionModes"`
	Variables      jsonVariables           `json:"Variables"`
}

type jsonVariables struct {
	Inputs        []reflect.Variable `json:"Inputs,omitempty"`
	Outputs       []reflect.Variable `json:"Outputs,omitempty"`
	Descriptors   []reflect.Variable `json:"Descriptors,omitempty"`
	PushConstants []reflect.Variable `json:"PushConstants,omitempty"`
	SpecConstants []reflect.Variable `json:"SpecConstants,omitempty"`
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: spvreflect [options] <file.spv> [file2.spv ...]\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  spvreflect shader.spv                          Reflect, print JSON\n")
	fmt.Fprintf(os.Stderr, "  spvreflect -ref-all-rscs shader.spv            Bypass reachability filter\n")
	fmt.Fprintf(os.Stderr, "  spvreflect -spec 7=10 shader.spv               Override spec constant 7\n")
}
