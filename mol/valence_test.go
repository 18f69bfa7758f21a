package mol_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/molgraph/mol"
)

// TestTotalHydrogens_Implicit walks the common neutral cases.
func TestTotalHydrogens_Implicit(t *testing.T) {
	cases := []struct {
		name    string
		build   func() *mol.Molecule
		atom    int
		wantHyd int
	}{
		{
			name: "methane carbon",
			build: func() *mol.Molecule {
				m := mol.NewMolecule()
				m.AddAtom(mol.Atom{Element: "C", Hydrogens: mol.ImplicitH})
				return m
			},
			atom:    0,
			wantHyd: 4,
		},
		{
			name: "terminal propane carbon",
			build: func() *mol.Molecule {
				m := mol.NewMolecule()
				for i := 0; i < 3; i++ {
					m.AddAtom(mol.Atom{Element: "C", Hydrogens: mol.ImplicitH})
				}
				m.AddBond(0, 1, mol.Single)
				m.AddBond(1, 2, mol.Single)
				return m
			},
			atom:    0,
			wantHyd: 3,
		},
		{
			name: "central propane carbon",
			build: func() *mol.Molecule {
				m := mol.NewMolecule()
				for i := 0; i < 3; i++ {
					m.AddAtom(mol.Atom{Element: "C", Hydrogens: mol.ImplicitH})
				}
				m.AddBond(0, 1, mol.Single)
				m.AddBond(1, 2, mol.Single)
				return m
			},
			atom:    1,
			wantHyd: 2,
		},
		{
			name: "double-bonded oxygen",
			build: func() *mol.Molecule {
				m := mol.NewMolecule()
				m.AddAtom(mol.Atom{Element: "C", Hydrogens: mol.ImplicitH})
				m.AddAtom(mol.Atom{Element: "O", Hydrogens: mol.ImplicitH})
				m.AddBond(0, 1, mol.Double)
				return m
			},
			atom:    1,
			wantHyd: 0,
		},
		{
			name: "nitrile nitrogen",
			build: func() *mol.Molecule {
				m := mol.NewMolecule()
				m.AddAtom(mol.Atom{Element: "C", Hydrogens: mol.ImplicitH})
				m.AddAtom(mol.Atom{Element: "N", Hydrogens: mol.ImplicitH})
				m.AddBond(0, 1, mol.Triple)
				return m
			},
			atom:    1,
			wantHyd: 0,
		},
		{
			name: "bare chlorine",
			build: func() *mol.Molecule {
				m := mol.NewMolecule()
				m.AddAtom(mol.Atom{Element: "Cl", Hydrogens: mol.ImplicitH})
				return m
			},
			atom:    0,
			wantHyd: 1,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := tc.build()
			got, err := m.TotalHydrogens(tc.atom)
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.wantHyd {
				t.Errorf("TotalHydrogens(%d) = %d; want %d", tc.atom, got, tc.wantHyd)
			}
		})
	}
}

// TestTotalHydrogens_AromaticRing verifies the ceil(1.5+1.5) rule:
// benzene carbon carries exactly one implicit hydrogen.
func TestTotalHydrogens_AromaticRing(t *testing.T) {
	m := mol.NewMolecule()
	for i := 0; i < 6; i++ {
		m.AddAtom(mol.Atom{Element: "C", Aromatic: true, Hydrogens: mol.ImplicitH})
	}
	for i := 0; i < 6; i++ {
		if _, err := m.AddBond(i, (i+1)%6, mol.Aromatic); err != nil {
			t.Fatal(err)
		}
	}

	for i := 0; i < 6; i++ {
		h, err := m.TotalHydrogens(i)
		if err != nil {
			t.Fatal(err)
		}
		if h != 1 {
			t.Errorf("benzene TotalHydrogens(%d) = %d; want 1", i, h)
		}
	}
}

// TestTotalHydrogens_ChargeShift checks the charge-adjusted valences.
func TestTotalHydrogens_ChargeShift(t *testing.T) {
	// Alkoxide: C-O with O carrying -1 → no hydrogen on oxygen.
	m := mol.NewMolecule()
	m.AddAtom(mol.Atom{Element: "C", Hydrogens: mol.ImplicitH})
	m.AddAtom(mol.Atom{Element: "O", Charge: -1, Hydrogens: mol.ImplicitH})
	if _, err := m.AddBond(0, 1, mol.Single); err != nil {
		t.Fatal(err)
	}
	h, err := m.TotalHydrogens(1)
	if err != nil {
		t.Fatal(err)
	}
	if h != 0 {
		t.Errorf("alkoxide oxygen hydrogens = %d; want 0", h)
	}

	// Protonated amine nitrogen without explicit count: N+ binds like carbon.
	m2 := mol.NewMolecule()
	m2.AddAtom(mol.Atom{Element: "C", Hydrogens: mol.ImplicitH})
	m2.AddAtom(mol.Atom{Element: "N", Charge: 1, Hydrogens: mol.ImplicitH})
	if _, err = m2.AddBond(0, 1, mol.Single); err != nil {
		t.Fatal(err)
	}
	h, err = m2.TotalHydrogens(1)
	if err != nil {
		t.Fatal(err)
	}
	if h != 3 {
		t.Errorf("N+ hydrogens = %d; want 3", h)
	}
}

// TestTotalHydrogens_ExplicitAndErrors covers bracket counts and bad indices.
func TestTotalHydrogens_ExplicitAndErrors(t *testing.T) {
	m := mol.NewMolecule()
	m.AddAtom(mol.Atom{Element: "N", Charge: 1, Hydrogens: 4}) // [NH4+]

	h, err := m.TotalHydrogens(0)
	if err != nil {
		t.Fatal(err)
	}
	if h != 4 {
		t.Errorf("explicit hydrogens = %d; want 4", h)
	}

	if _, err = m.TotalHydrogens(7); !errors.Is(err, mol.ErrAtomIndex) {
		t.Errorf("want ErrAtomIndex, got %v", err)
	}
}
