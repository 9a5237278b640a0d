package reflect_test

import (
	"fmt"

	"github.com/modularml/spvreflect/reflect"
)

// ExampleWalk linearises a struct holding a vec3 position and a
// column-major mat4 transform into its leaf scalar offsets and paths.
func ExampleWalk() {
	f32 := reflect.Scalar{Kind: reflect.ScalarFloat, Width: 4}
	vec3 := reflect.Vector{Scalar: f32, Count: 3}
	vec4 := reflect.Vector{Scalar: f32, Count: 4}
	mat4 := reflect.Matrix{Column: vec4, Count: 4, Stride: 16, Major: reflect.MajorColumn}

	st := reflect.Struct{
		Members: []reflect.StructMember{
			{Name: "position", Offset: 0, Type: vec3},
			{Name: "transform", Offset: 16, Type: mat4},
		},
	}

	for _, e := range reflect.Walk(st) {
		fmt.Printf("%s offset=%d\n", e.Path, e.Offset)
	}
	// Output:
	// .position[0] offset=0
	// .position[1] offset=4
	// .position[2] offset=8
	// .transform[0][0] offset=16
	// .transform[0][1] offset=20
	// .transform[0][2] offset=24
	// .transform[0][3] offset=28
	// .transform[1][0] offset=32
	// .transform[1][1] offset=36
	// .transform[1][2] offset=40
	// .transform[1][3] offset=44
	// .transform[2][0] offset=48
	// .transform[2][1] offset=52
	// .transform[2][2] offset=56
	// .transform[2][3] offset=60
	// .transform[3][0] offset=64
	// .transform[3][1] offset=68
	// .transform[3][2] offset=72
	// .transform[3][3] offset=76
}
