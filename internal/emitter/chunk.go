package emitter

import "strings"

// Chunk is a single compiled instruction sequence, either the top-level
// program or one function body.
type Chunk struct {
	Code []Instruction
}

// Emit appends an instruction and returns its index.
func (c *Chunk) Emit(op OpCode, operand any) int {
	idx := len(c.Code)
	c.Code = append(c.Code, Instruction{Op: op, Operand: operand})
	return idx
}

// EmitJump appends a jump instruction with a placeholder target, to be
// resolved later by PatchJump once the jump destination is known.
func (c *Chunk) EmitJump(op OpCode) int {
	return c.Emit(op, 0)
}

// PatchJump backfills the jump instruction at idx with the current end of
// the chunk as its target, matching the original compiler's
// jump-then-patch-to-bytecode.len() pattern.
func (c *Chunk) PatchJump(idx int) {
	c.Code[idx].Operand = len(c.Code)
}

// PatchJumpTo backfills the jump instruction at idx with an explicit
// target, used for the loop-back jump to a remembered loop start.
func (c *Chunk) PatchJumpTo(idx, target int) {
	c.Code[idx].Operand = target
}

// Len returns the current instruction count, the address the next
// instruction will be written at.
func (c *Chunk) Len() int {
	return len(c.Code)
}

// Dump renders the chunk as one instruction per line, used by emitter
// snapshot tests.
func (c *Chunk) Dump() string {
	var sb strings.Builder
	for idx, instr := range c.Code {
		sb.WriteString(instr.String())
		if idx < len(c.Code)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
