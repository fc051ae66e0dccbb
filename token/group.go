/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

// Group is a node in the token group tree. Groups never hold values.
type Group struct {
	// ID uniquely identifies the group within a snapshot.
	ID string `json:"id"`

	// Name is the display name of the group.
	Name string `json:"name"`

	// Description is optional documentation for the group.
	Description string `json:"description,omitempty"`

	// ParentGroupID links the group to its parent; empty for top-level groups.
	ParentGroupID string `json:"parentGroupId,omitempty"`

	// IsRoot marks the synthetic per-kind root group, which never
	// contributes to variable names.
	IsRoot bool `json:"isRoot,omitempty"`

	// BrandID associates the group with a brand.
	BrandID string `json:"brandId,omitempty"`
}

// GroupsByID indexes groups by identifier. Later duplicates win.
func GroupsByID(groups []*Group) map[string]*Group {
	byID := make(map[string]*Group, len(groups))
	for _, g := range groups {
		byID[g.ID] = g
	}
	return byID
}
