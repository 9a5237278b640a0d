package reflect

import "fmt"

// Kind identifies the category of a reflection Error.
type Kind string

// The error taxonomy a reflection can terminate with. Reflection never
// returns a partial result: the first error encountered aborts the whole
// operation.
const (
	KindCorruptedBinary   Kind = "CORRUPTED_BINARY"
	KindInstrTooShort     Kind = "INSTR_TOO_SHORT"
	KindIDCollision       Kind = "ID_COLLISION"
	KindNameCollision     Kind = "NAME_COLLISION"
	KindDecoCollision     Kind = "DECO_COLLISION"
	KindTyNotFound        Kind = "TY_NOT_FOUND"
	KindConstNotFound     Kind = "CONST_NOT_FOUND"
	KindFuncNotFound      Kind = "FUNC_NOT_FOUND"
	KindBrokenNestedTy    Kind = "BROKEN_NESTED_TY"
	KindBrokenAccessChain Kind = "BROKEN_ACCESS_CHAIN"
	KindMissingDeco       Kind = "MISSING_DECO"
	KindUnencodedEnum     Kind = "UNENCODED_ENUM"
	KindUnsupportedTy     Kind = "UNSUPPORTED_TY"
	KindUnsupportedExec   Kind = "UNSUPPORTED_EXEC_MODE"
	KindUnsupportedSpec   Kind = "UNSUPPORTED_SPEC"
	KindUnsupportedConst  Kind = "UNSUPPORTED_CONST_TY"
	KindSpecTyMismatched  Kind = "SPEC_TY_MISMATCHED"
	KindAccessConflict    Kind = "ACCESS_CONFLICT"
)

// Error is a terminal reflection failure. It carries the taxonomy Kind plus
// whatever context was available at the point of failure.
type Error struct {
	Kind Kind
	// Msg is a short human-readable detail specific to the failure site.
	Msg string
	// ID is the SPIR-V id involved, if any (0 means "not applicable").
	ID uint32
	// Member is the struct member index involved, or -1.
	Member int
	// Offset is the byte offset into the word stream, or -1.
	Offset int
}

func (e *Error) Error() string {
	s := string(e.Kind)
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	if e.ID != 0 {
		s += fmt.Sprintf(" (id=%d)", e.ID)
	}
	if e.Member >= 0 {
		s += fmt.Sprintf(" (member=%d)", e.Member)
	}
	if e.Offset >= 0 {
		s += fmt.Sprintf(" (offset=0x%x)", e.Offset)
	}
	return s
}

func newErr(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg, Member: -1, Offset: -1}
}

func newErrID(kind Kind, msg string, id uint32) *Error {
	return &Error{Kind: kind, Msg: msg, ID: id, Member: -1, Offset: -1}
}

func newErrMember(kind Kind, msg string, id uint32, member int) *Error {
	return &Error{Kind: kind, Msg: msg, ID: id, Member: member, Offset: -1}
}
