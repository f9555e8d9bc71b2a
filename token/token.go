package token

// Payload is a tagged union over one of the *Payload types below. It is
// nil for KindTerminal, the one kind that carries no extra data (see each
// type's doc for the kinds it belongs to). Passes recover the concrete payload with a type
// switch, never with an interface method — matching the source's use of
// sum types rather than dynamic dispatch for token payloads.
type Payload any

// ConstPayload is the payload of a KindConst token.
type ConstPayload struct {
	Value float64
}

// PixelAccessPayload is the payload of a KindPixelAccess token.
type PixelAccessPayload struct {
	Plane int
	Mode  AccessMode
}

// PropStorePayload is the payload of a KindPropStore token.
type PropStorePayload struct {
	PropName string
	PropType PropType
}

// PropLoadPayload is the payload of a KindPropLoad token.
type PropLoadPayload struct {
	PropName string
}

// OpPayload is the payload of KindArith and KindStack tokens: the opcode
// name as written in the postfix source (e.g. "+", "dup", "sqrt"). Its
// arity is resolved by package vmabi, not stored redundantly here.
type OpPayload struct {
	Name string
}

// LabelPayload is the payload of a KindLabelDef token.
type LabelPayload struct {
	Name string
}

// JumpPayload is the payload of KindJump and KindBranch tokens: the
// target label name. For KindBranch this is the taken target; the
// fall-through successor is implicit (the next block).
type JumpPayload struct {
	Target string
}

// Token is an immutable record in the input stream. SourceIndex is the
// position used as the error cursor throughout the analysis passes; it
// is monotonically increasing in stream order, per the producer contract
// in spec §6.
type Token struct {
	Kind        Kind
	Text        string // original lexeme, diagnostic-only
	SourceIndex int
	Payload     Payload
}

// Stream is the ordered, immutable input to one analysis run.
type Stream []Token
