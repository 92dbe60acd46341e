// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"cogentcore.org/scene2d/base/errors"
	"cogentcore.org/scene2d/ecs"
	"cogentcore.org/scene2d/layout"
	"cogentcore.org/scene2d/tree"
	"github.com/jinzhu/copier"
)

// Clone duplicates the subtree at e under parent and returns the copy
// of e. Components are deep copied; update callbacks are not.
func (w *World) Clone(e, parent ecs.Entity) (ecs.Entity, error) {
	if !w.Tree.Contains(e) {
		return ecs.Nil, tree.ErrStaleReference
	}
	copies := map[ecs.Entity]ecs.Entity{}
	var errs []error
	for _, src := range append([]ecs.Entity{e}, w.Tree.AllSortChildren(e)...) {
		dst := w.Entities.NewEntity()
		copies[src] = dst
		errs = append(errs,
			cloneComponent(w.Rects, src, dst),
			cloneComponent(w.Transforms, src, dst),
			cloneComponent(w.Labels, src, dst),
			cloneComponent(w.Names, src, dst),
			cloneComponent(w.Hidden, src, dst),
			cloneComponent(w.Layout.Cells, src, dst),
			cloneComponent(w.Layout.Scalers, src, dst),
		)
		if el, ok := w.Layout.Elements.Get(src); ok {
			w.Layout.Elements.Set(dst, layout.Clone(el))
		}
		p := parent
		if src != e {
			sp, _ := w.Tree.Parent(src)
			p = copies[sp]
		}
		if _, err := w.Tree.Add(dst, p); err != nil {
			errs = append(errs, err)
		}
	}
	return copies[e], errors.Log(errors.Join(errs...))
}

// cloneComponent deep copies the component of src, if any, to dst.
func cloneComponent[T any](s *ecs.Store[T], src, dst ecs.Entity) error {
	v, ok := s.Get(src)
	if !ok {
		return nil
	}
	var c T
	if err := copier.CopyWithOption(&c, &v, copier.Option{DeepCopy: true}); err != nil {
		return err
	}
	s.Set(dst, c)
	return nil
}
