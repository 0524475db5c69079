package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/jordip/pawpal/internal/care"
	"github.com/jordip/pawpal/internal/display"
	"github.com/spf13/cobra"
)

var petCmd = &cobra.Command{
	Use:   "pet",
	Short: "Manage pets",
}

var (
	petSpecies string
	petAge     int
	petNeeds   []string
)

var petAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a pet",
	Args:  cobra.ExactArgs(1),
	RunE:  runPetAdd,
}

var petListCmd = &cobra.Command{
	Use:   "list",
	Short: "List pets",
	RunE:  runPetList,
}

func init() {
	petAddCmd.Flags().StringVar(&petSpecies, "species", "", "Species, e.g. dog, cat (required)")
	petAddCmd.Flags().IntVar(&petAge, "age", 0, "Age in years")
	petAddCmd.Flags().StringSliceVar(&petNeeds, "need", nil, "Special need (repeatable)")
	_ = petAddCmd.MarkFlagRequired("species")

	petCmd.AddCommand(petAddCmd)
	petCmd.AddCommand(petListCmd)
}

func runPetAdd(cmd *cobra.Command, args []string) error {
	store, err := care.Load(stateDir)
	if err != nil {
		return err
	}

	pet, err := care.NewPet(args[0], strings.ToLower(petSpecies), petAge)
	if err != nil {
		return err
	}
	for _, need := range petNeeds {
		pet.AddSpecialNeed(need)
	}
	if err := store.AddPet(pet); err != nil {
		return err
	}
	if err := care.Save(stateDir, store); err != nil {
		return err
	}

	fmt.Printf("Added pet %s (%s, age %d) [%s]\n", pet.Name, pet.Species, pet.Age, pet.ID)
	return nil
}

func runPetList(cmd *cobra.Command, args []string) error {
	store, err := care.Load(stateDir)
	if err != nil {
		return err
	}
	fmt.Printf("Pets of %s:\n", store.Owner().Name)
	display.PetList(os.Stdout, store.Pets())
	return nil
}
