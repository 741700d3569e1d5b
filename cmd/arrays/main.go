package main

import (
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/metorial/metorial/services/ordering/pkg/ordering"
	sentryUtil "github.com/metorial/metorial/services/ordering/pkg/sentry-util"
	"github.com/metorial/metorial/services/ordering/pkg/util"
)

type member struct {
	Name   string
	Skills []string
}

func (m *member) String() string {
	return fmt.Sprintf("%s%v", m.Name, m.Skills)
}

var errUnordered = errors.New("value has no order")

func main() {
	err := godotenv.Load()
	if err != nil {
		// ignore error if .env file is not found
	}

	sentryUtil.InitSentryIfNeeded(getEnvOrDefault("SENTRY_SERVER_NAME", "arrays"))
	defer sentryUtil.ShutdownSentry()

	sortWalkthrough()
	shallowCopyWalkthrough()

	if err := comparatorFaultWalkthrough(); err != nil {
		log.Printf("Comparator fault: %v", err)
		sentryUtil.CaptureError("comparator-fault", err)
	}
}

func sortWalkthrough() {
	numbers := []int{5, 1, 7, 3, 10, 9, 2, 4, 6, 8}

	fmt.Println("Sorting without a comparator:")
	fmt.Println(util.Must(ordering.Sort(numbers)))

	fmt.Println("Sorting with Ascending:")
	fmt.Println(util.Must(ordering.Sort(numbers, ordering.WithComparator(ordering.Ascending[int]))))

	fmt.Println("Sorting with Descending:")
	fmt.Println(util.Must(ordering.Sort(numbers, ordering.WithComparator(ordering.Descending[int]))))
}

func shallowCopyWalkthrough() {
	team := []*member{
		{Name: "Carol", Skills: []string{"go"}},
		{Name: "Alice", Skills: []string{"sql"}},
		{Name: "Bob", Skills: []string{"css"}},
	}

	copied := ordering.Sorted(team, func(a, b *member) int {
		return strings.Compare(a.Name, b.Name)
	})
	fmt.Println("Original:", team)
	fmt.Println("Sorted copy:", copied)

	// members are shared, so the rename shows up in both slices
	copied[0].Name = "Alicia"
	copied[0].Skills = append(copied[0].Skills, "go")
	fmt.Println("After renaming through the copy, original:", team)

	// replacing a slot only touches the copy
	copied[2] = &member{Name: "Dave", Skills: []string{"rust"}}
	fmt.Println("After replacing in the copy, original:", team)
	fmt.Println("After replacing in the copy, copy:", copied)

	detached := util.CopyWith(team, func(m *member) *member {
		return &member{Name: m.Name, Skills: util.Copy(m.Skills)}
	})
	detached[0].Name = "Zed"
	fmt.Println("After renaming through a detached copy, original:", team)
}

func comparatorFaultWalkthrough() error {
	readings := []float64{3.5, math.NaN(), 1.25, 2}

	_, err := ordering.SortFuncErr(readings, func(a, b float64) (int, error) {
		if math.IsNaN(a) || math.IsNaN(b) {
			return 0, errUnordered
		}
		return ordering.Ascending(a, b), nil
	})
	if err != nil {
		return fmt.Errorf("failed to sort readings %v: %w", readings, err)
	}

	fmt.Println("Sorted readings:", readings)
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
