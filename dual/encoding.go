package dual

import "github.com/katalvlaran/microblossom/blossom"

// Instruction32 is the 32-bit wire word the stackless adapter emits when
// the dual side is hardware-backed: a 2-bit primary opcode, an extended
// opcode space behind SetSpeed with bit 2 set, and node/vertex fields in
// the high 15 bits. This is the only bit-exact interface this module
// produces; everything else (Obstacle, Driver) is symbolic Go data.
//
// Grounded 1:1 on instruction.rs, bit layout preserved exactly.
type Instruction32 uint32

const (
	opCodeMask         = 0b11
	opCodeSetSpeed     = 0b00
	opCodeSetBlossom   = 0b01
	opCodeAddDefect    = 0b10
	opCodeMatch        = 0b11
	extendedOpEnable   = 0b100
	extendedOpMask     = 0b111 << 3
	extendedOpFindObst = 0b000 << 3
	extendedOpReset    = 0b100 << 3
	extendedOpGrow     = 0b110 << 3
)

// EncodeSetSpeed encodes "set node's grow state to speed".
func EncodeSetSpeed(node blossom.NodeIndex, speed blossom.GrowState) Instruction32 {
	fieldNode := uint32(node) << 17
	fieldSpeed := uint32(speed) << 15
	return Instruction32(fieldNode | fieldSpeed | opCodeSetSpeed)
}

// EncodeSetBlossom encodes "associate node with blossomIndex".
func EncodeSetBlossom(node, blossomIndex blossom.NodeIndex) Instruction32 {
	fieldNode := uint32(node) << 17
	fieldBlossom := uint32(blossomIndex) << 2
	return Instruction32(fieldNode | fieldBlossom | opCodeSetBlossom)
}

// EncodeAddDefect encodes "node just became a defect at vertex".
func EncodeAddDefect(vertex blossom.VertexIndex, node blossom.NodeIndex) Instruction32 {
	fieldVertex := uint32(vertex) << 17
	fieldNode := uint32(node) << 2
	return Instruction32(fieldVertex | fieldNode | opCodeAddDefect)
}

// EncodeGrow encodes the extended "grow by length" instruction.
func EncodeGrow(length blossom.Weight) Instruction32 {
	fieldLength := uint32(length) << 6
	return Instruction32(fieldLength | extendedOpEnable | extendedOpGrow)
}

// EncodeReset encodes the extended "reset" instruction.
func EncodeReset() Instruction32 {
	return Instruction32(extendedOpEnable | extendedOpReset)
}

// EncodeFindObstacle encodes the extended "find obstacle" instruction.
func EncodeFindObstacle() Instruction32 {
	return Instruction32(extendedOpEnable | extendedOpFindObst)
}

// IsExtended reports whether the word uses the extended opcode space
// (primary opcode SetSpeed with the extended-enable bit set).
func (i Instruction32) IsExtended() bool {
	return i.opCode() == opCodeSetSpeed && uint32(i)&extendedOpEnable != 0
}

// IsSetSpeed reports whether the word is a (non-extended) SetSpeed.
func (i Instruction32) IsSetSpeed() bool {
	return i.opCode() == opCodeSetSpeed && uint32(i)&extendedOpEnable == 0
}

// IsSetBlossom reports whether the word is a SetBlossom.
func (i Instruction32) IsSetBlossom() bool { return i.opCode() == opCodeSetBlossom }

// IsGrow reports whether the word is an extended Grow.
func (i Instruction32) IsGrow() bool {
	return i.IsExtended() && i.extendedOpCode() == extendedOpGrow
}

func (i Instruction32) opCode() uint32         { return uint32(i) & opCodeMask }
func (i Instruction32) extendedOpCode() uint32 { return uint32(i) & extendedOpMask }

// Field1 returns the high 15-bit node/vertex field common to every
// non-extended instruction.
func (i Instruction32) Field1() uint32 {
	return (uint32(i) >> 17) & ((1 << 15) - 1)
}

// Speed decodes the 2-bit speed field of a SetSpeed instruction. Callers
// must only call this when IsSetSpeed reports true.
func (i Instruction32) Speed() blossom.GrowState {
	return blossom.GrowState((uint32(i) >> 15) & 0b11)
}
