package reflect

import (
	"fmt"

	"github.com/modularml/spvreflect/internal/spvbuild"
)

// Example_iterator decodes the word stream of a module containing nothing
// but a void type and its function-type wrapper, printing each instruction's
// opcode and operand-word count in stream order.
func Example_iterator() {
	m := spvbuild.New()
	void := m.AddTypeVoid()
	m.AddTypeFunction(void)
	blob := m.Build()

	it, _, err := newIterator(blob)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for {
		ins, ok, err := it.next()
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		if !ok {
			break
		}
		fmt.Printf("opcode=%d operands=%d\n", ins.opcode, len(ins.payload))
	}
	// Output:
	// opcode=17 operands=1
	// opcode=14 operands=2
	// opcode=19 operands=1
	// opcode=33 operands=2
}
