// Demonstrates a map keyed by a custom struct with its own hash and equality
// functions, plus finalizer-managed values.
package main

import (
	"fmt"

	"github.com/neoromantics/hashtable"
)

type Employee struct {
	Name string
	ID   int
}

type PersonalInfo struct {
	Address string
	Salary  int
}

func hashEmployee(e Employee) uint64 {
	return hashtable.HashString(e.Name) ^ uint64(e.ID)*0x9e3779b97f4a7c15
}

func main() {
	m := hashtable.New(16,
		hashtable.WithHashFunc[Employee, *PersonalInfo](hashEmployee),
		hashtable.WithValueFinalizer[Employee, *PersonalInfo](func(p *PersonalInfo) {
			fmt.Printf("releasing record for %s\n", p.Address)
		}),
	)

	employees := []Employee{
		{Name: "Alice", ID: 1},
		{Name: "Bob", ID: 2},
		{Name: "Carol", ID: 3},
	}
	infos := []*PersonalInfo{
		{Address: "12 Oak Lane", Salary: 90000},
		{Address: "7 Birch Street", Salary: 85000},
		{Address: "3 Elm Court", Salary: 110000},
	}

	for i, e := range employees {
		if err := m.Set(e, infos[i]); err != nil {
			panic(err)
		}
	}

	// Lookup by a fresh key value; only Name and ID matter to the hash.
	if info, ok := m.Get(Employee{Name: "Bob", ID: 2}); ok {
		fmt.Printf("Bob lives at %s and earns %d\n", info.Address, info.Salary)
	}

	if _, ok := m.Get(Employee{Name: "Dave", ID: 4}); !ok {
		fmt.Println("Dave is not on file")
	}

	fmt.Println("all employees:")
	for e, info := range m.All() {
		fmt.Printf("  %s (#%d): %s\n", e.Name, e.ID, info.Address)
	}

	if m.Delete(Employee{Name: "Bob", ID: 2}) {
		fmt.Println("Bob deleted")
	}

	// Close releases the remaining records through the value finalizer.
	m.Close()
}
