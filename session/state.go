// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/js-arias/phytree/phylo"
	"github.com/js-arias/phytree/store"
)

// Restore reads the renamed taxa
// and the last applied rooting
// from a store,
// and applies them to the session.
//
// If the stored rooting can not be applied
// (for example, the terminal is no longer in the tree),
// the renamed taxa are still applied
// and the tree is left with its original rooting.
func (s *Session) Restore(ctx context.Context, st store.Store) error {
	r := make(phylo.Renames)
	v, err := st.Get(ctx, store.RenamedTaxa)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return err
	}
	if err == nil && v != "" {
		if err := json.Unmarshal([]byte(v), &r); err != nil {
			return fmt.Errorf("invalid value of %q: %v", store.RenamedTaxa, err)
		}
	}

	rooting, err := st.Get(ctx, store.Rooting)
	if errors.Is(err, store.ErrNotFound) {
		rooting = ""
	} else if err != nil {
		return err
	}

	if err := s.apply(r, rooting); err != nil {
		s.reset(r)
		return fmt.Errorf("while restoring rooting %q: %w", rooting, err)
	}
	s.rooting = rooting
	return nil
}

// Save writes the renamed taxa
// and the last applied rooting
// into a store.
func (s *Session) Save(ctx context.Context, st store.Store) error {
	if len(s.renames) == 0 {
		if err := st.Delete(ctx, store.RenamedTaxa); err != nil {
			return err
		}
	} else {
		b, err := json.Marshal(s.renames)
		if err != nil {
			return err
		}
		if err := st.Set(ctx, store.RenamedTaxa, string(b)); err != nil {
			return err
		}
	}

	if s.rooting == "" {
		return st.Delete(ctx, store.Rooting)
	}
	return st.Set(ctx, store.Rooting, s.rooting)
}
