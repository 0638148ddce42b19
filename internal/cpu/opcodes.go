package cpu

// installIrregularOpcodes assigns every opcode in 0x00-0x3F and
// 0xC0-0xFF individually, plus the one exception inside the generated
// LD r,r' block (0x76, HALT, where dst=src=(HL) would otherwise be a
// self-move).
func installIrregularOpcodes() {
	t := &unprefixedTable

	t[0x00] = func(c *CPU) int { return 1 } // NOP

	t[0x01] = func(c *CPU) int { c.setBC(c.readImmediateWord()); return 3 }
	t[0x02] = func(c *CPU) int { c.bus.Write(c.getBC(), c.a); return 2 }
	t[0x03] = func(c *CPU) int { c.setBC(c.getBC() + 1); return 2 }
	t[0x04] = func(c *CPU) int { c.inc(&c.b); return 1 }
	t[0x05] = func(c *CPU) int { c.dec(&c.b); return 1 }
	t[0x06] = func(c *CPU) int { c.b = c.readImmediate(); return 2 }
	t[0x07] = func(c *CPU) int { c.rlc(&c.a, true); return 1 }
	t[0x08] = func(c *CPU) int {
		addr := c.readImmediateWord()
		c.bus.Write(addr, uint8(c.sp))
		c.bus.Write(addr+1, uint8(c.sp>>8))
		return 5
	}
	t[0x09] = func(c *CPU) int { c.addToHL(c.getBC()); return 2 }
	t[0x0A] = func(c *CPU) int { c.a = c.bus.Read(c.getBC()); return 2 }
	t[0x0B] = func(c *CPU) int { c.setBC(c.getBC() - 1); return 2 }
	t[0x0C] = func(c *CPU) int { c.inc(&c.c); return 1 }
	t[0x0D] = func(c *CPU) int { c.dec(&c.c); return 1 }
	t[0x0E] = func(c *CPU) int { c.c = c.readImmediate(); return 2 }
	t[0x0F] = func(c *CPU) int { c.rrc(&c.a, true); return 1 }

	t[0x10] = func(c *CPU) int { c.readImmediate(); c.stopped = true; return 1 } // STOP
	t[0x11] = func(c *CPU) int { c.setDE(c.readImmediateWord()); return 3 }
	t[0x12] = func(c *CPU) int { c.bus.Write(c.getDE(), c.a); return 2 }
	t[0x13] = func(c *CPU) int { c.setDE(c.getDE() + 1); return 2 }
	t[0x14] = func(c *CPU) int { c.inc(&c.d); return 1 }
	t[0x15] = func(c *CPU) int { c.dec(&c.d); return 1 }
	t[0x16] = func(c *CPU) int { c.d = c.readImmediate(); return 2 }
	t[0x17] = func(c *CPU) int { c.rl(&c.a, true); return 1 }
	t[0x18] = func(c *CPU) int { jumpRelative(c); return 3 }
	t[0x19] = func(c *CPU) int { c.addToHL(c.getDE()); return 2 }
	t[0x1A] = func(c *CPU) int { c.a = c.bus.Read(c.getDE()); return 2 }
	t[0x1B] = func(c *CPU) int { c.setDE(c.getDE() - 1); return 2 }
	t[0x1C] = func(c *CPU) int { c.inc(&c.e); return 1 }
	t[0x1D] = func(c *CPU) int { c.dec(&c.e); return 1 }
	t[0x1E] = func(c *CPU) int { c.e = c.readImmediate(); return 2 }
	t[0x1F] = func(c *CPU) int { c.rr(&c.a, true); return 1 }

	t[0x20] = func(c *CPU) int { return jumpRelativeIf(c, !c.isSetFlag(flagZ)) }
	t[0x21] = func(c *CPU) int { c.setHL(c.readImmediateWord()); return 3 }
	t[0x22] = func(c *CPU) int { c.bus.Write(c.getHL(), c.a); c.setHL(c.getHL() + 1); return 2 }
	t[0x23] = func(c *CPU) int { c.setHL(c.getHL() + 1); return 2 }
	t[0x24] = func(c *CPU) int { c.inc(&c.h); return 1 }
	t[0x25] = func(c *CPU) int { c.dec(&c.h); return 1 }
	t[0x26] = func(c *CPU) int { c.h = c.readImmediate(); return 2 }
	t[0x27] = func(c *CPU) int { c.daa(); return 1 }
	t[0x28] = func(c *CPU) int { return jumpRelativeIf(c, c.isSetFlag(flagZ)) }
	t[0x29] = func(c *CPU) int { c.addToHL(c.getHL()); return 2 }
	t[0x2A] = func(c *CPU) int { c.a = c.bus.Read(c.getHL()); c.setHL(c.getHL() + 1); return 2 }
	t[0x2B] = func(c *CPU) int { c.setHL(c.getHL() - 1); return 2 }
	t[0x2C] = func(c *CPU) int { c.inc(&c.l); return 1 }
	t[0x2D] = func(c *CPU) int { c.dec(&c.l); return 1 }
	t[0x2E] = func(c *CPU) int { c.l = c.readImmediate(); return 2 }
	t[0x2F] = func(c *CPU) int { c.cpl(); return 1 }

	t[0x30] = func(c *CPU) int { return jumpRelativeIf(c, !c.isSetFlag(flagC)) }
	t[0x31] = func(c *CPU) int { c.sp = c.readImmediateWord(); return 3 }
	t[0x32] = func(c *CPU) int { c.bus.Write(c.getHL(), c.a); c.setHL(c.getHL() - 1); return 2 }
	t[0x33] = func(c *CPU) int { c.sp++; return 2 }
	t[0x34] = func(c *CPU) int {
		addr := c.getHL()
		v := c.bus.Read(addr)
		c.inc(&v)
		c.bus.Write(addr, v)
		return 3
	}
	t[0x35] = func(c *CPU) int {
		addr := c.getHL()
		v := c.bus.Read(addr)
		c.dec(&v)
		c.bus.Write(addr, v)
		return 3
	}
	t[0x36] = func(c *CPU) int { c.bus.Write(c.getHL(), c.readImmediate()); return 3 }
	t[0x37] = func(c *CPU) int { c.scf(); return 1 }
	t[0x38] = func(c *CPU) int { return jumpRelativeIf(c, c.isSetFlag(flagC)) }
	t[0x39] = func(c *CPU) int { c.addToHL(c.sp); return 2 }
	t[0x3A] = func(c *CPU) int { c.a = c.bus.Read(c.getHL()); c.setHL(c.getHL() - 1); return 2 }
	t[0x3B] = func(c *CPU) int { c.sp--; return 2 }
	t[0x3C] = func(c *CPU) int { c.inc(&c.a); return 1 }
	t[0x3D] = func(c *CPU) int { c.dec(&c.a); return 1 }
	t[0x3E] = func(c *CPU) int { c.a = c.readImmediate(); return 2 }
	t[0x3F] = func(c *CPU) int { c.ccf(); return 1 }

	t[0x76] = halt

	t[0xC0] = func(c *CPU) int { return retIf(c, !c.isSetFlag(flagZ)) }
	t[0xC1] = func(c *CPU) int { c.setBC(c.popStack()); return 3 }
	t[0xC2] = func(c *CPU) int { return jumpIf(c, !c.isSetFlag(flagZ)) }
	t[0xC3] = func(c *CPU) int { c.pc = c.readImmediateWord(); return 4 }
	t[0xC4] = func(c *CPU) int { return callIf(c, !c.isSetFlag(flagZ)) }
	t[0xC5] = func(c *CPU) int { c.pushStack(c.getBC()); return 4 }
	t[0xC6] = func(c *CPU) int { c.addToA(c.readImmediate()); return 2 }
	t[0xC7] = func(c *CPU) int { return rst(c, 0x00) }
	t[0xC8] = func(c *CPU) int { return retIf(c, c.isSetFlag(flagZ)) }
	t[0xC9] = func(c *CPU) int { c.pc = c.popStack(); return 4 }
	t[0xCA] = func(c *CPU) int { return jumpIf(c, c.isSetFlag(flagZ)) }
	t[0xCB] = func(c *CPU) int { b := c.readImmediate(); return cbTable[b](c) }
	t[0xCC] = func(c *CPU) int { return callIf(c, c.isSetFlag(flagZ)) }
	t[0xCD] = func(c *CPU) int {
		target := c.readImmediateWord()
		c.pushStack(c.pc)
		c.pc = target
		return 6
	}
	t[0xCE] = func(c *CPU) int { c.adcToA(c.readImmediate()); return 2 }
	t[0xCF] = func(c *CPU) int { return rst(c, 0x08) }

	t[0xD0] = func(c *CPU) int { return retIf(c, !c.isSetFlag(flagC)) }
	t[0xD1] = func(c *CPU) int { c.setDE(c.popStack()); return 3 }
	t[0xD2] = func(c *CPU) int { return jumpIf(c, !c.isSetFlag(flagC)) }
	t[0xD3] = illegal
	t[0xD4] = func(c *CPU) int { return callIf(c, !c.isSetFlag(flagC)) }
	t[0xD5] = func(c *CPU) int { c.pushStack(c.getDE()); return 4 }
	t[0xD6] = func(c *CPU) int { c.sub(c.readImmediate()); return 2 }
	t[0xD7] = func(c *CPU) int { return rst(c, 0x10) }
	t[0xD8] = func(c *CPU) int { return retIf(c, c.isSetFlag(flagC)) }
	t[0xD9] = func(c *CPU) int { c.pc = c.popStack(); c.interrupts.SetIME(true); return 4 } // RETI
	t[0xDA] = func(c *CPU) int { return jumpIf(c, c.isSetFlag(flagC)) }
	t[0xDB] = illegal
	t[0xDC] = func(c *CPU) int { return callIf(c, c.isSetFlag(flagC)) }
	t[0xDD] = illegal
	t[0xDE] = func(c *CPU) int { c.sbc(c.readImmediate()); return 2 }
	t[0xDF] = func(c *CPU) int { return rst(c, 0x18) }

	t[0xE0] = func(c *CPU) int { c.bus.Write(0xFF00+uint16(c.readImmediate()), c.a); return 3 }
	t[0xE1] = func(c *CPU) int { c.setHL(c.popStack()); return 3 }
	t[0xE2] = func(c *CPU) int { c.bus.Write(0xFF00+uint16(c.c), c.a); return 2 }
	t[0xE3] = illegal
	t[0xE4] = illegal
	t[0xE5] = func(c *CPU) int { c.pushStack(c.getHL()); return 4 }
	t[0xE6] = func(c *CPU) int { c.and(c.readImmediate()); return 2 }
	t[0xE7] = func(c *CPU) int { return rst(c, 0x20) }
	t[0xE8] = func(c *CPU) int { c.sp = c.addSPSigned(c.readImmediate()); return 4 }
	t[0xE9] = func(c *CPU) int { c.pc = c.getHL(); return 1 }
	t[0xEA] = func(c *CPU) int { c.bus.Write(c.readImmediateWord(), c.a); return 4 }
	t[0xEB] = illegal
	t[0xEC] = illegal
	t[0xED] = illegal
	t[0xEE] = func(c *CPU) int { c.xor(c.readImmediate()); return 2 }
	t[0xEF] = func(c *CPU) int { return rst(c, 0x28) }

	t[0xF0] = func(c *CPU) int { c.a = c.bus.Read(0xFF00 + uint16(c.readImmediate())); return 3 }
	t[0xF1] = func(c *CPU) int { c.setAF(c.popStack()); return 3 }
	t[0xF2] = func(c *CPU) int { c.a = c.bus.Read(0xFF00 + uint16(c.c)); return 2 }
	t[0xF3] = func(c *CPU) int { c.interrupts.SetIME(false); return 1 } // DI
	t[0xF4] = illegal
	t[0xF5] = func(c *CPU) int { c.pushStack(c.getAF()); return 4 }
	t[0xF6] = func(c *CPU) int { c.or(c.readImmediate()); return 2 }
	t[0xF7] = func(c *CPU) int { return rst(c, 0x30) }
	t[0xF8] = func(c *CPU) int { c.setHL(c.addSPSigned(c.readImmediate())); return 3 }
	t[0xF9] = func(c *CPU) int { c.sp = c.getHL(); return 2 }
	t[0xFA] = func(c *CPU) int { c.a = c.bus.Read(c.readImmediateWord()); return 4 }
	t[0xFB] = func(c *CPU) int { c.eiPending = true; return 1 } // EI, delayed by one instruction
	t[0xFC] = illegal
	t[0xFD] = illegal
	t[0xFE] = func(c *CPU) int { c.cp(c.readImmediate()); return 2 }
	t[0xFF] = func(c *CPU) int { return rst(c, 0x38) }
}

// illegal implements the lenient policy for the eleven undefined opcodes
// (0xD3,0xDB,0xDD,0xE3,0xE4,0xEB,0xEC,0xED,0xF4,0xFC,0xFD): treat them
// as a 1 m-cycle no-op rather than faulting, since real test ROMs never
// intentionally execute them and a hard stop would just complicate
// everything downstream for no test-passing benefit.
func illegal(c *CPU) int { return 1 }

func halt(c *CPU) int {
	if !c.interrupts.IME() && c.interrupts.Pending() {
		c.haltBug = true
	} else {
		c.halted = true
	}
	return 1
}

func jumpRelative(c *CPU) {
	offset := int8(c.readImmediate())
	c.pc = uint16(int32(c.pc) + int32(offset))
}

func jumpRelativeIf(c *CPU, cond bool) int {
	offset := int8(c.readImmediate())
	if !cond {
		return 2
	}
	c.pc = uint16(int32(c.pc) + int32(offset))
	return 3
}

func jumpIf(c *CPU, cond bool) int {
	target := c.readImmediateWord()
	if !cond {
		return 3
	}
	c.pc = target
	return 4
}

func callIf(c *CPU, cond bool) int {
	target := c.readImmediateWord()
	if !cond {
		return 3
	}
	c.pushStack(c.pc)
	c.pc = target
	return 6
}

func retIf(c *CPU, cond bool) int {
	if !cond {
		return 2
	}
	c.pc = c.popStack()
	return 5
}

func rst(c *CPU, vector uint16) int {
	c.pushStack(c.pc)
	c.pc = vector
	return 4
}
