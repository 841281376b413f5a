package region

// Protection is the set of access rights for a range of memory.
type Protection uint8

const (
	None    Protection = 0
	Read    Protection = 1 << 0
	Write   Protection = 1 << 1
	Execute Protection = 1 << 2

	ReadWrite        = Read | Write
	ReadExecute      = Read | Execute
	ReadWriteExecute = Read | Write | Execute
)

// Has reports whether every right in q is also in p.
func (p Protection) Has(q Protection) bool {
	return p&q == q
}

func (p Protection) String() string {
	buf := []byte("---")
	if p&Read != 0 {
		buf[0] = 'r'
	}
	if p&Write != 0 {
		buf[1] = 'w'
	}
	if p&Execute != 0 {
		buf[2] = 'x'
	}
	return string(buf)
}
