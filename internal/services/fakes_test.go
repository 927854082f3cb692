package services

import (
	"context"

	"github.com/campuskit/onboarding_service/internal/clients/lms"
	"github.com/campuskit/onboarding_service/internal/domain"
	"github.com/google/uuid"
)

type fakeProducer struct {
	keys   []string
	values []string
}

func (p *fakeProducer) PublishMessage(key, value []byte) error {
	p.keys = append(p.keys, string(key))
	p.values = append(p.values, string(value))
	return nil
}

type fakeUploader struct {
	err error
}

func (u *fakeUploader) UploadBytes(_ context.Context, folder, filename string, _ []byte) (string, error) {
	if u.err != nil {
		return "", u.err
	}
	return "https://files.test/" + folder + "/" + filename, nil
}

type fakeDocumentRepo struct {
	docs map[uuid.UUID]*domain.Document

	// bumpBeforeUpdate simulates a concurrent review landing between the
	// service's read and its compare-and-swap write.
	bumpBeforeUpdate bool
}

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{docs: make(map[uuid.UUID]*domain.Document)}
}

func (r *fakeDocumentRepo) CreateDocument(doc *domain.Document) error {
	if doc.ID == uuid.Nil {
		doc.ID = uuid.New()
	}
	stored := *doc
	r.docs[doc.ID] = &stored
	return nil
}

func (r *fakeDocumentRepo) FindByID(id uuid.UUID) (*domain.Document, error) {
	doc, ok := r.docs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *doc
	return &copied, nil
}

func (r *fakeDocumentRepo) ListByUser(userID uuid.UUID) ([]domain.Document, error) {
	var out []domain.Document
	for _, d := range r.docs {
		if d.UserID == userID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (r *fakeDocumentRepo) ListByUniversity(universityID uuid.UUID, status domain.DocumentStatus, limit, offset int) ([]domain.Document, error) {
	var out []domain.Document
	for _, d := range r.docs {
		if d.UniversityID != universityID {
			continue
		}
		if status != "" && d.Status != status {
			continue
		}
		out = append(out, *d)
	}
	return out, nil
}

func (r *fakeDocumentRepo) UpdateReviewed(doc *domain.Document, expectedVersion int64) error {
	stored, ok := r.docs[doc.ID]
	if ok && r.bumpBeforeUpdate {
		stored.Version++
		r.bumpBeforeUpdate = false
	}
	if !ok || stored.Version != expectedVersion {
		return domain.ErrConflict
	}
	updated := *doc
	updated.Version = expectedVersion + 1
	r.docs[doc.ID] = &updated
	doc.Version = updated.Version
	return nil
}

type fakePaymentRepo struct {
	payments map[uuid.UUID]*domain.Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[uuid.UUID]*domain.Payment)}
}

func (r *fakePaymentRepo) CreatePayment(p *domain.Payment) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	stored := *p
	r.payments[p.ID] = &stored
	return nil
}

func (r *fakePaymentRepo) FindByIDForUser(id, userID uuid.UUID) (*domain.Payment, error) {
	p, ok := r.payments[id]
	if !ok || p.UserID != userID {
		return nil, domain.ErrNotFound
	}
	copied := *p
	return &copied, nil
}

func (r *fakePaymentRepo) SavePayment(p *domain.Payment) error {
	stored := *p
	r.payments[p.ID] = &stored
	return nil
}

func (r *fakePaymentRepo) ListByUser(userID uuid.UUID) ([]domain.Payment, error) {
	var out []domain.Payment
	for _, p := range r.payments {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

type fakeHostelRepo struct {
	apps map[uuid.UUID]*domain.HostelApplication
}

func newFakeHostelRepo() *fakeHostelRepo {
	return &fakeHostelRepo{apps: make(map[uuid.UUID]*domain.HostelApplication)}
}

func (r *fakeHostelRepo) CreateApplication(app *domain.HostelApplication) error {
	if app.ID == uuid.Nil {
		app.ID = uuid.New()
	}
	stored := *app
	r.apps[app.ID] = &stored
	return nil
}

func (r *fakeHostelRepo) FindByUser(userID uuid.UUID) (*domain.HostelApplication, error) {
	for _, a := range r.apps {
		if a.UserID == userID {
			copied := *a
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeHostelRepo) FindByID(id uuid.UUID) (*domain.HostelApplication, error) {
	a, ok := r.apps[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *a
	return &copied, nil
}

func (r *fakeHostelRepo) SaveApplication(app *domain.HostelApplication) error {
	stored := *app
	r.apps[app.ID] = &stored
	return nil
}

type fakeLMSRepo struct {
	activations map[uuid.UUID]*domain.LMSActivation
}

func newFakeLMSRepo() *fakeLMSRepo {
	return &fakeLMSRepo{activations: make(map[uuid.UUID]*domain.LMSActivation)}
}

func (r *fakeLMSRepo) CreateActivation(a *domain.LMSActivation) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	stored := *a
	r.activations[a.UserID] = &stored
	return nil
}

func (r *fakeLMSRepo) FindByUser(userID uuid.UUID) (*domain.LMSActivation, error) {
	a, ok := r.activations[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *a
	return &copied, nil
}

func (r *fakeLMSRepo) SaveActivation(a *domain.LMSActivation) error {
	stored := *a
	r.activations[a.UserID] = &stored
	return nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*domain.User)}
}

func (r *fakeUserRepo) CreateUser(u *domain.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	stored := *u
	r.users[u.ID] = &stored
	return nil
}

func (r *fakeUserRepo) FindUserByEmail(email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeUserRepo) FindUserByID(id uuid.UUID) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) SaveUser(u *domain.User) error {
	stored := *u
	r.users[u.ID] = &stored
	return nil
}

func (r *fakeUserRepo) CountStudents(universityID uuid.UUID) (int64, error) {
	var n int64
	for _, u := range r.users {
		if u.Role == domain.RoleStudent && u.UniversityID != nil && *u.UniversityID == universityID {
			n++
		}
	}
	return n, nil
}

type fakeProvisioner struct {
	err error
}

func (p *fakeProvisioner) ProvisionAccount(_ context.Context, email string) (*lms.ProvisionResult, error) {
	if p.err != nil {
		return nil, p.err
	}
	return &lms.ProvisionResult{
		Username:      "student",
		ActivationKey: "LMS-ABC123",
		Platform:      "Moodle",
	}, nil
}

type fakeOnboardingRepo struct {
	snapshot *domain.OnboardingSnapshot
	loadErr  error
	progress []*domain.ProgressSnapshot
}

func (r *fakeOnboardingRepo) LoadSnapshot(userID, universityID uuid.UUID) (*domain.OnboardingSnapshot, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	return r.snapshot, nil
}

func (r *fakeOnboardingRepo) LatestProgress(userID uuid.UUID) (*domain.ProgressSnapshot, error) {
	if len(r.progress) == 0 {
		return nil, domain.ErrNotFound
	}
	return r.progress[len(r.progress)-1], nil
}

func (r *fakeOnboardingRepo) RecordProgress(snap *domain.ProgressSnapshot) error {
	r.progress = append(r.progress, snap)
	return nil
}

type fakeUniversityRepo struct {
	universities map[uuid.UUID]*domain.University
}

func newFakeUniversityRepo() *fakeUniversityRepo {
	return &fakeUniversityRepo{universities: make(map[uuid.UUID]*domain.University)}
}

func (r *fakeUniversityRepo) CreateUniversity(u *domain.University) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	stored := *u
	r.universities[u.ID] = &stored
	return nil
}

func (r *fakeUniversityRepo) FindByID(id uuid.UUID) (*domain.University, error) {
	u, ok := r.universities[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUniversityRepo) FindBySlug(slug string) (*domain.University, error) {
	for _, u := range r.universities {
		if u.Slug == slug {
			copied := *u
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeUniversityRepo) FindByDomain(emailDomain string) (*domain.University, error) {
	for _, u := range r.universities {
		if u.Domain == emailDomain {
			copied := *u
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeUniversityRepo) SaveUniversity(u *domain.University) error {
	stored := *u
	r.universities[u.ID] = &stored
	return nil
}

type fakeCourseRepo struct {
	courses     map[uuid.UUID]*domain.Course
	subjects    map[uuid.UUID]*domain.Subject
	enrollments map[string]*domain.Enrollment // user|subject key
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{
		courses:     make(map[uuid.UUID]*domain.Course),
		subjects:    make(map[uuid.UUID]*domain.Subject),
		enrollments: make(map[string]*domain.Enrollment),
	}
}

func enrollmentKey(userID, subjectID uuid.UUID) string {
	return userID.String() + "|" + subjectID.String()
}

func (r *fakeCourseRepo) CreateCourse(c *domain.Course) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	stored := *c
	r.courses[c.ID] = &stored
	return nil
}

func (r *fakeCourseRepo) FindCourseByID(id uuid.UUID) (*domain.Course, error) {
	c, ok := r.courses[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *c
	return &copied, nil
}

func (r *fakeCourseRepo) SaveCourse(c *domain.Course) error {
	stored := *c
	r.courses[c.ID] = &stored
	return nil
}

func (r *fakeCourseRepo) ListCourses(universityID uuid.UUID) ([]domain.Course, error) {
	var out []domain.Course
	for _, c := range r.courses {
		if c.UniversityID == universityID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeCourseRepo) CreateSubject(s *domain.Subject) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	stored := *s
	r.subjects[s.ID] = &stored
	return nil
}

func (r *fakeCourseRepo) FindSubjectByID(id uuid.UUID) (*domain.Subject, error) {
	s, ok := r.subjects[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *s
	return &copied, nil
}

func (r *fakeCourseRepo) ListSubjects(universityID uuid.UUID, courseID *uuid.UUID) ([]domain.Subject, error) {
	var out []domain.Subject
	for _, s := range r.subjects {
		if s.UniversityID != universityID {
			continue
		}
		if courseID != nil && s.CourseID != *courseID {
			continue
		}
		out = append(out, *s)
	}
	return out, nil
}

func (r *fakeCourseRepo) CreateEnrollment(e *domain.Enrollment) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	stored := *e
	r.enrollments[enrollmentKey(e.UserID, e.SubjectID)] = &stored
	return nil
}

func (r *fakeCourseRepo) FindEnrollment(userID, subjectID uuid.UUID) (*domain.Enrollment, error) {
	e, ok := r.enrollments[enrollmentKey(userID, subjectID)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *e
	return &copied, nil
}

func (r *fakeCourseRepo) SaveEnrollment(e *domain.Enrollment) error {
	stored := *e
	r.enrollments[enrollmentKey(e.UserID, e.SubjectID)] = &stored
	return nil
}

func (r *fakeCourseRepo) ListEnrollmentsByUser(userID uuid.UUID, status domain.EnrollmentStatus) ([]domain.Enrollment, error) {
	var out []domain.Enrollment
	for _, e := range r.enrollments {
		if e.UserID != userID {
			continue
		}
		if status != "" && e.Status != status {
			continue
		}
		out = append(out, *e)
	}
	return out, nil
}

type fakeComplianceRepo struct {
	items   map[uuid.UUID]*domain.ComplianceItem
	records map[uuid.UUID]*domain.StudentCompliance // keyed by item id, single test user
}

func newFakeComplianceRepo() *fakeComplianceRepo {
	return &fakeComplianceRepo{
		items:   make(map[uuid.UUID]*domain.ComplianceItem),
		records: make(map[uuid.UUID]*domain.StudentCompliance),
	}
}

func (r *fakeComplianceRepo) CreateItem(item *domain.ComplianceItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	stored := *item
	r.items[item.ID] = &stored
	return nil
}

func (r *fakeComplianceRepo) FindItemByID(id uuid.UUID) (*domain.ComplianceItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *item
	return &copied, nil
}

func (r *fakeComplianceRepo) SaveItem(item *domain.ComplianceItem) error {
	stored := *item
	r.items[item.ID] = &stored
	return nil
}

func (r *fakeComplianceRepo) ListItems(universityID uuid.UUID, activeOnly bool) ([]domain.ComplianceItem, error) {
	var out []domain.ComplianceItem
	for _, item := range r.items {
		if item.UniversityID != universityID {
			continue
		}
		if activeOnly && !item.IsActive {
			continue
		}
		out = append(out, *item)
	}
	return out, nil
}

func (r *fakeComplianceRepo) FindRecord(userID, itemID uuid.UUID) (*domain.StudentCompliance, error) {
	rec, ok := r.records[itemID]
	if !ok || rec.UserID != userID {
		return nil, domain.ErrNotFound
	}
	copied := *rec
	return &copied, nil
}

func (r *fakeComplianceRepo) CreateRecord(rec *domain.StudentCompliance) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	stored := *rec
	r.records[rec.ComplianceItemID] = &stored
	return nil
}

func (r *fakeComplianceRepo) SaveRecord(rec *domain.StudentCompliance) error {
	stored := *rec
	r.records[rec.ComplianceItemID] = &stored
	return nil
}

func (r *fakeComplianceRepo) ListRecordsByUser(userID uuid.UUID) ([]domain.StudentCompliance, error) {
	var out []domain.StudentCompliance
	for _, rec := range r.records {
		if rec.UserID == userID {
			out = append(out, *rec)
		}
	}
	return out, nil
}
