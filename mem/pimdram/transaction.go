package pimdram

import (
	"strconv"

	"github.com/LeeHayun/PIM-Code-Test/mem/addressmapping"
	"github.com/LeeHayun/PIM-Code-Test/mem/pim"
)

type transaction struct {
	id       uint64
	addr     uint64
	isWrite  bool
	location addressmapping.Address
	register pim.Register
	isReg    bool

	needActivate bool
}

func (t *transaction) TaskID() string {
	return strconv.FormatUint(t.id, 10)
}
