package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/bos-com/BUGEMAUNIV-CAFETERIA-MANAGEMENT-SYSTEM/internal/config"
	"github.com/bos-com/BUGEMAUNIV-CAFETERIA-MANAGEMENT-SYSTEM/internal/domain"
	"github.com/bos-com/BUGEMAUNIV-CAFETERIA-MANAGEMENT-SYSTEM/internal/repository"
	"github.com/bos-com/BUGEMAUNIV-CAFETERIA-MANAGEMENT-SYSTEM/internal/schedule"
)

func testWindows() map[string]config.WindowConfig {
	return map[string]config.WindowConfig{
		"breakfast": {Start: "06:00", End: "07:00"},
		"lunch":     {Start: "13:00", End: "14:30"},
		"supper":    {Start: "18:00", End: "19:30"},
	}
}

func testSchedule() *schedule.Schedule {
	sched, err := schedule.New(testWindows())
	if err != nil {
		panic(err)
	}

	return sched
}

func clock(day, hhmm string) time.Time {
	t, err := time.Parse("2006-01-02 15:04", day+" "+hhmm)
	if err != nil {
		panic(err)
	}

	return t
}

type fakeCredentialRepo struct {
	rows   []domain.Credential
	nextID uint

	createErr  error
	findErr    error
	consumeErr error

	creates  int
	consumes int
}

func (f *fakeCredentialRepo) Create(_ context.Context, cred domain.Credential) (domain.Credential, error) {
	if f.createErr != nil {
		return domain.Credential{}, f.createErr
	}

	f.nextID++
	cred.ID = f.nextID
	f.rows = append(f.rows, cred)
	f.creates++

	return cred, nil
}

func (f *fakeCredentialRepo) FindRecent(_ context.Context, studentID uint, mealType domain.MealType, limit int) ([]domain.Credential, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}

	var matched []domain.Credential
	for _, cred := range f.rows {
		if cred.StudentID == studentID && cred.MealType == mealType {
			matched = append(matched, cred)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].IssuedAt.After(matched[j].IssuedAt)
	})

	if len(matched) > limit {
		matched = matched[:limit]
	}

	return matched, nil
}

func (f *fakeCredentialRepo) FindActive(_ context.Context, studentID uint, mealType domain.MealType, now time.Time) (domain.Credential, error) {
	if f.findErr != nil {
		return domain.Credential{}, f.findErr
	}

	for _, cred := range f.rows {
		if cred.StudentID == studentID && cred.MealType == mealType && !cred.Consumed && cred.ExpiresAt.After(now) {
			return cred, nil
		}
	}

	return domain.Credential{}, repository.ErrCredentialNotFound
}

func (f *fakeCredentialRepo) Consume(_ context.Context, id uint) error {
	if f.consumeErr != nil {
		return f.consumeErr
	}

	for i := range f.rows {
		if f.rows[i].ID == id {
			if f.rows[i].Consumed {
				return repository.ErrCredentialAlreadyUsed
			}

			f.rows[i].Consumed = true
			f.consumes++

			return nil
		}
	}

	return repository.ErrCredentialNotFound
}

type fakeStudentRepo struct {
	students map[uint]domain.Student

	balanceDeltas map[uint]int
}

func newFakeStudentRepo(students ...domain.Student) *fakeStudentRepo {
	repo := &fakeStudentRepo{
		students:      map[uint]domain.Student{},
		balanceDeltas: map[uint]int{},
	}
	for _, s := range students {
		repo.students[s.ID] = s
	}

	return repo
}

func (f *fakeStudentRepo) FindByID(_ context.Context, id uint) (domain.Student, error) {
	student, ok := f.students[id]
	if !ok {
		return domain.Student{}, repository.ErrStudentNotFound
	}

	return student, nil
}

func (f *fakeStudentRepo) FindByIDAndRegNumber(_ context.Context, id uint, regNumber string) (domain.Student, error) {
	student, ok := f.students[id]
	if !ok || student.RegNumber != regNumber {
		return domain.Student{}, repository.ErrStudentNotFound
	}

	return student, nil
}

func (f *fakeStudentRepo) AddMealBalance(_ context.Context, id uint, delta int) error {
	if _, ok := f.students[id]; !ok {
		return repository.ErrStudentNotFound
	}

	f.balanceDeltas[id] += delta

	return nil
}

type fakeRenderer struct {
	renders int
	err     error
}

func (f *fakeRenderer) Render(text string, _ int) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}

	f.renders++

	return []byte("png:" + text), nil
}

type fakeImageStore struct {
	saved map[string][]byte
	err   error
}

func newFakeImageStore() *fakeImageStore {
	return &fakeImageStore{saved: map[string][]byte{}}
}

func (f *fakeImageStore) Save(_ context.Context, name string, data []byte) (string, error) {
	if f.err != nil {
		return "", f.err
	}

	f.saved[name] = data

	return "/images/" + name, nil
}

type fakeMealLogRepo struct {
	logs   []domain.MealLog
	nextID uint

	createErr error
}

func (f *fakeMealLogRepo) Create(_ context.Context, log domain.MealLog) (domain.MealLog, error) {
	if f.createErr != nil {
		return domain.MealLog{}, f.createErr
	}

	f.nextID++
	log.ID = f.nextID
	f.logs = append(f.logs, log)

	return log, nil
}

func (f *fakeMealLogRepo) FindByStudentID(_ context.Context, studentID uint, limit int) ([]domain.MealLog, error) {
	var matched []domain.MealLog
	for _, log := range f.logs {
		if log.StudentID == studentID {
			matched = append(matched, log)
		}
	}

	if len(matched) > limit {
		matched = matched[:limit]
	}

	return matched, nil
}

func (f *fakeMealLogRepo) FindRecent(_ context.Context, limit int) ([]domain.MealLog, error) {
	logs := f.logs
	if len(logs) > limit {
		logs = logs[:limit]
	}

	return logs, nil
}

func (f *fakeMealLogRepo) CountByStudentID(_ context.Context, studentID uint) (int64, error) {
	var count int64
	for _, log := range f.logs {
		if log.StudentID == studentID {
			count++
		}
	}

	return count, nil
}

type fakePaymentRepo struct {
	payments []domain.Payment
	nextID   uint
}

func (f *fakePaymentRepo) Create(_ context.Context, payment domain.Payment) (domain.Payment, error) {
	f.nextID++
	payment.ID = f.nextID
	f.payments = append(f.payments, payment)

	return payment, nil
}

func (f *fakePaymentRepo) FindByStudentID(_ context.Context, studentID uint) ([]domain.Payment, error) {
	var matched []domain.Payment
	for _, p := range f.payments {
		if p.StudentID == studentID {
			matched = append(matched, p)
		}
	}

	return matched, nil
}

func (f *fakePaymentRepo) FindAll(_ context.Context) ([]domain.Payment, error) {
	return f.payments, nil
}

func (f *fakePaymentRepo) SumMealsAdded(_ context.Context, studentID uint) (int64, error) {
	var total int64
	for _, p := range f.payments {
		if p.StudentID == studentID {
			total += int64(p.MealsAdded)
		}
	}

	return total, nil
}

type fakeAuthStudentRepo struct {
	byRegNumber map[string]domain.Student
	nextID      uint
}

func newFakeAuthStudentRepo(students ...domain.Student) *fakeAuthStudentRepo {
	repo := &fakeAuthStudentRepo{byRegNumber: map[string]domain.Student{}}
	for _, s := range students {
		repo.byRegNumber[s.RegNumber] = s
		if s.ID > repo.nextID {
			repo.nextID = s.ID
		}
	}

	return repo
}

func (f *fakeAuthStudentRepo) Create(_ context.Context, student domain.Student) (domain.Student, error) {
	if _, exists := f.byRegNumber[student.RegNumber]; exists {
		return domain.Student{}, repository.ErrStudentRegNumberExists
	}

	f.nextID++
	student.ID = f.nextID
	f.byRegNumber[student.RegNumber] = student

	return student, nil
}

func (f *fakeAuthStudentRepo) FindByRegNumber(_ context.Context, regNumber string) (domain.Student, error) {
	student, ok := f.byRegNumber[regNumber]
	if !ok {
		return domain.Student{}, repository.ErrStudentNotFound
	}

	return student, nil
}

func (f *fakeAuthStudentRepo) FindAll(_ context.Context) ([]domain.Student, error) {
	students := make([]domain.Student, 0, len(f.byRegNumber))
	for _, s := range f.byRegNumber {
		students = append(students, s)
	}

	sort.Slice(students, func(i, j int) bool { return students[i].ID < students[j].ID })

	return students, nil
}

type fakeAuthStaffRepo struct {
	byStaffID map[string]domain.Staff
	nextID    uint
}

func newFakeAuthStaffRepo(staff ...domain.Staff) *fakeAuthStaffRepo {
	repo := &fakeAuthStaffRepo{byStaffID: map[string]domain.Staff{}}
	for _, s := range staff {
		repo.byStaffID[s.StaffID] = s
		if s.ID > repo.nextID {
			repo.nextID = s.ID
		}
	}

	return repo
}

func (f *fakeAuthStaffRepo) Create(_ context.Context, staff domain.Staff) (domain.Staff, error) {
	f.nextID++
	staff.ID = f.nextID
	f.byStaffID[staff.StaffID] = staff

	return staff, nil
}

func (f *fakeAuthStaffRepo) FindByStaffID(_ context.Context, staffID string) (domain.Staff, error) {
	staff, ok := f.byStaffID[staffID]
	if !ok {
		return domain.Staff{}, repository.ErrStaffNotFound
	}

	return staff, nil
}

var errStore = fmt.Errorf("store unavailable")
