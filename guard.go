package region

import "errors"

// ProtectGuard restores the protection a range had before ProtectWithHandle
// changed it.
type ProtectGuard struct {
	base, size uintptr
	previous   []Region
}

// ProtectWithHandle records the current protection of every region in
// [base, base+size) and then changes the range to prot. The whole range must
// be mapped. Call Restore on the returned guard to put things back.
func ProtectWithHandle(base, size uintptr, prot Protection) (*ProtectGuard, error) {
	g := &ProtectGuard{base: base, size: size}
	for reg, err := range QueryRange(base, size) {
		if err != nil {
			return nil, err
		}
		g.previous = append(g.previous, reg)
	}

	if err := Protect(base, size, prot); err != nil {
		return nil, err
	}
	return g, nil
}

// Restore sets each part of the range back to its previous protection. Only
// the guarded range is touched, even if the original regions extended past
// it. It's a no-op after a successful Restore.
func (g *ProtectGuard) Restore() error {
	end := g.base + g.size

	var errs []error
	for i, reg := range g.previous {
		start := max(reg.Base, g.base)
		stop := min(reg.End(), end)
		if stop <= start {
			continue
		}

		if err := Protect(start, stop-start, reg.Protection); err != nil {
			errs = append(errs, err)
			continue
		}
		g.previous[i].Size = 0
	}

	if len(errs) == 0 {
		g.previous = nil
	}
	return errors.Join(errs...)
}

// WithProtection changes [base, base+size) to prot, runs fn and then restores
// the previous protection. The protection is restored once, even if fn
// panics, but the restore error is only returned if fn returned normally.
func WithProtection(base, size uintptr, prot Protection, fn func()) (err error) {
	g, err := ProtectWithHandle(base, size, prot)
	if err != nil {
		return err
	}

	returned := false
	defer func() {
		restoreErr := g.Restore()
		if returned {
			err = restoreErr
		}
	}()

	fn()
	returned = true
	return nil
}

// LockGuard unlocks a range locked by LockWithHandle.
type LockGuard struct {
	base, size uintptr
	locked     bool
}

// LockWithHandle locks [base, base+size) and returns a guard to unlock it.
func LockWithHandle(base, size uintptr) (*LockGuard, error) {
	if err := Lock(base, size); err != nil {
		return nil, err
	}
	return &LockGuard{base: base, size: size, locked: true}, nil
}

// Unlock unlocks the range. Calling it again does nothing.
func (g *LockGuard) Unlock() error {
	if !g.locked {
		return nil
	}
	if err := Unlock(g.base, g.size); err != nil {
		return err
	}
	g.locked = false
	return nil
}
