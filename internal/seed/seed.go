// Package seed generates development fixtures: random employees, a handful
// of locations, and a week of shifts per location.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MeronSeyoum/workSycScheduler-sub000/internal/domain"
)

var firstNames = []string{
	"Olivia", "Liam", "Emma", "Noah", "Ava", "Ethan", "Sophia", "Mason",
	"Isabella", "Logan", "Mia", "Lucas", "Amelia", "Jacob", "Harper", "Jack",
	"Evelyn", "Daniel", "Grace", "Henry", "Chloe", "Owen", "Nora", "Caleb",
}

var lastNames = []string{
	"Smith", "Johnson", "Brown", "Taylor", "Anderson", "Thomas", "Jackson",
	"White", "Harris", "Martin", "Thompson", "Garcia", "Clark", "Lewis",
	"Walker", "Hall", "Young", "King", "Wright", "Scott",
}

var locationNames = []string{
	"Riverside Office Park", "Harbour View Tower", "Maple Street Clinic",
	"Lakeside Mall", "Central Station Complex", "Westgate Business Centre",
}

var shiftTypes = []string{"morning", "day", "evening", "night"}

var digits = "0123456789"

func randomFullName() string {
	return firstNames[rand.Intn(len(firstNames))] + " " + lastNames[rand.Intn(len(lastNames))]
}

func usernameFromFullName(fullName string) string {
	parts := strings.Fields(strings.ToLower(fullName))
	username := strings.Join(parts, ".")

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		username += string(digits[rand.Intn(len(digits))])
	}

	return username
}

var roles = []domain.Role{
	domain.RoleCleaner,
	domain.RoleCleaner,
	domain.RoleCleaner,
	domain.RoleManager,
}

// RandomUser builds a user with a bcrypt-hashed shared password. Cleaners
// outnumber managers three to one.
func RandomUser(password string, emailDomainName string) (*domain.User, error) {
	fullName := randomFullName()
	username := usernameFromFullName(fullName)
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &domain.User{
		Username:     username,
		PasswordHash: string(passwordHash),
		FullName:     fullName,
		Email:        username + "@" + emailDomainName,
		Role:         roles[rand.Intn(len(roles))],
	}, nil
}

// RandomLocation picks the idx-th preset name so repeated seeding stays
// readable in the UI.
func RandomLocation(idx int) *domain.Location {
	name := locationNames[idx%len(locationNames)]
	if idx >= len(locationNames) {
		name = fmt.Sprintf("%s %d", name, idx/len(locationNames)+1)
	}

	return &domain.Location{
		Name:    name,
		Address: fmt.Sprintf("%d Example Road", rand.Intn(200)+1),
	}
}

// shift windows that satisfy the default compliance rule
// (06:00-22:00, even whole-hour durations).
var shiftWindows = [][2]string{
	{"06:00", "10:00"},
	{"06:00", "14:00"},
	{"08:00", "14:00"},
	{"08:00", "16:00"},
	{"10:00", "18:00"},
	{"12:00", "18:00"},
	{"14:00", "22:00"},
	{"16:00", "22:00"},
}

// RandomShifts generates days consecutive days of shifts for a location
// starting at from, assigning 1-2 random employees from employeeIDs to each.
func RandomShifts(locationID string, from time.Time, days int, employeeIDs []int64) []domain.Shift {
	shifts := make([]domain.Shift, 0, days*2)

	for d := 0; d < days; d++ {
		date := from.AddDate(0, 0, d).Format("2006-01-02")
		perDay := rand.Intn(2) + 1

		for i := 0; i < perDay; i++ {
			window := shiftWindows[rand.Intn(len(shiftWindows))]
			shifts = append(shifts, domain.Shift{
				LocationID:          locationID,
				Date:                date,
				StartTime:           window[0],
				EndTime:             window[1],
				ShiftType:           shiftTypes[rand.Intn(len(shiftTypes))],
				AssignedEmployeeIDs: randomEmployeeSubset(employeeIDs),
				Status:              domain.ShiftScheduled,
			})
		}
	}

	return shifts
}

func randomEmployeeSubset(employeeIDs []int64) []int64 {
	if len(employeeIDs) == 0 {
		return nil
	}

	// Fisher-Yates on a copy, then take a prefix of 1 or 2.
	shuffled := append([]int64{}, employeeIDs...)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	n := rand.Intn(2) + 1
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}
