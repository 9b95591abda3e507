package emulator

import (
	"os"

	"github.com/pkg/errors"
)

// LoadFile loads a memory map file into memory.
func (emu *Emulator) LoadFile(path string) (err error) {
	inf, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "memory map open failed")
	}
	defer inf.Close()

	err = emu.Cpu.ReadRAM(inf)
	return errors.Wrapf(err, "%v: memory map load failed", path)
}

// SaveFile writes all of memory to a memory map file.
func (emu *Emulator) SaveFile(path string) (err error) {
	ouf, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "memory map create failed")
	}
	defer func() {
		cerr := ouf.Close()
		if err == nil {
			err = errors.Wrapf(cerr, "%v: memory map close failed", path)
		}
	}()

	err = emu.Cpu.WriteRAM(ouf)
	err = errors.Wrapf(err, "%v: memory map save failed", path)
	return
}
