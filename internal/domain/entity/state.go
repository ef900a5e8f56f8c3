package entity

import (
	"maps"
	"slices"
	"strings"
)

// AppState is the whole application aggregate, persisted and synchronised as one snapshot.
type AppState struct {
	Users              []User              `json:"users"`
	Customers          []Customer          `json:"customers"`
	Complaints         []Complaint         `json:"complaints"`
	Products           []Product           `json:"products"`
	Branches           []Branch            `json:"branches"`
	FollowUpTasks      []FollowUpTask      `json:"followUpTasks"`
	DailyInquiries     []DailyInquiry      `json:"dailyInquiries"`
	DailyFeedbackTasks []DailyFeedbackTask `json:"dailyFeedbackTasks"`
	SystemSettings     SystemSettings      `json:"systemSettings"`
	Theme              Theme               `json:"theme"`
	ActivityLog        []ActivityLogEntry  `json:"activityLog"`
}

// DefaultState returns the state of a fresh installation.
func DefaultState() *AppState {
	return &AppState{
		Users:              []User{},
		Customers:          []Customer{},
		Complaints:         []Complaint{},
		Products:           []Product{},
		Branches:           []Branch{},
		FollowUpTasks:      []FollowUpTask{},
		DailyInquiries:     []DailyInquiry{},
		DailyFeedbackTasks: []DailyFeedbackTask{},
		SystemSettings:     DefaultSystemSettings(),
		Theme:              DefaultTheme(),
		ActivityLog:        []ActivityLogEntry{},
	}
}

// Clone returns a shallow copy whose collections can be replaced or
// appended to without touching the receiver. Entities themselves are values
// and must be replaced, never edited in place.
func (s *AppState) Clone() *AppState {
	out := *s
	out.Users = slices.Clip(s.Users)
	out.Customers = slices.Clip(s.Customers)
	out.Complaints = slices.Clip(s.Complaints)
	out.Products = slices.Clip(s.Products)
	out.Branches = slices.Clip(s.Branches)
	out.FollowUpTasks = slices.Clip(s.FollowUpTasks)
	out.DailyInquiries = slices.Clip(s.DailyInquiries)
	out.DailyFeedbackTasks = slices.Clip(s.DailyFeedbackTasks)
	out.ActivityLog = slices.Clip(s.ActivityLog)
	out.Theme.Colors = maps.Clone(s.Theme.Colors)

	return &out
}

// Normalize replaces nil collections with empty ones so the snapshot always
// carries every key as an array.
func (s *AppState) Normalize() {
	s.Users = orEmpty(s.Users)
	s.Customers = orEmpty(s.Customers)
	s.Complaints = orEmpty(s.Complaints)
	s.Products = orEmpty(s.Products)
	s.Branches = orEmpty(s.Branches)
	s.FollowUpTasks = orEmpty(s.FollowUpTasks)
	s.DailyInquiries = orEmpty(s.DailyInquiries)
	s.DailyFeedbackTasks = orEmpty(s.DailyFeedbackTasks)
	s.ActivityLog = orEmpty(s.ActivityLog)
}

// FindCustomer returns the customer with id.
func (s *AppState) FindCustomer(id string) (Customer, bool) {
	return find(s.Customers, func(c Customer) bool { return c.ID == id })
}

// FindComplaint returns the complaint with id.
func (s *AppState) FindComplaint(id string) (Complaint, bool) {
	return find(s.Complaints, func(c Complaint) bool { return c.ComplaintID == id })
}

// FindUser returns the user with id.
func (s *AppState) FindUser(id string) (User, bool) {
	return find(s.Users, func(u User) bool { return u.ID == id })
}

// FindUserByUsername returns the user whose username matches, ignoring case.
func (s *AppState) FindUserByUsername(username string) (User, bool) {
	return find(s.Users, func(u User) bool { return strings.EqualFold(u.Username, username) })
}

// FindBranch returns the branch with id.
func (s *AppState) FindBranch(id string) (Branch, bool) {
	return find(s.Branches, func(b Branch) bool { return b.ID == id })
}

// PutCustomer replaces the customer with the same id, or appends it.
func (s *AppState) PutCustomer(c Customer) {
	s.Customers = upsert(s.Customers, c, func(x Customer) bool { return x.ID == c.ID })
}

// PutComplaint replaces the complaint with the same id, or prepends it.
func (s *AppState) PutComplaint(c Complaint) {
	idx := slices.IndexFunc(s.Complaints, func(x Complaint) bool { return x.ComplaintID == c.ComplaintID })
	if idx < 0 {
		s.Complaints = append([]Complaint{c}, s.Complaints...)

		return
	}
	s.Complaints = replaceAt(s.Complaints, idx, c)
}

// PutUser replaces the user with the same id, or appends it.
func (s *AppState) PutUser(u User) {
	s.Users = upsert(s.Users, u, func(x User) bool { return x.ID == u.ID })
}

// PutBranch replaces the branch with the same id, or appends it.
func (s *AppState) PutBranch(b Branch) {
	s.Branches = upsert(s.Branches, b, func(x Branch) bool { return x.ID == b.ID })
}

// PutProduct replaces the product with the same id, or appends it.
func (s *AppState) PutProduct(p Product) {
	s.Products = upsert(s.Products, p, func(x Product) bool { return x.ID == p.ID })
}

// PutFollowUpTask replaces the task with the same id, or prepends it.
func (s *AppState) PutFollowUpTask(t FollowUpTask) {
	idx := slices.IndexFunc(s.FollowUpTasks, func(x FollowUpTask) bool { return x.ID == t.ID })
	if idx < 0 {
		s.FollowUpTasks = append([]FollowUpTask{t}, s.FollowUpTasks...)

		return
	}
	s.FollowUpTasks = replaceAt(s.FollowUpTasks, idx, t)
}

// PutDailyFeedbackTask replaces the task with the same id, or appends it.
func (s *AppState) PutDailyFeedbackTask(t DailyFeedbackTask) {
	s.DailyFeedbackTasks = upsert(s.DailyFeedbackTasks, t, func(x DailyFeedbackTask) bool { return x.ID == t.ID })
}

// AddInquiry prepends a daily inquiry.
func (s *AppState) AddInquiry(i DailyInquiry) {
	s.DailyInquiries = append([]DailyInquiry{i}, s.DailyInquiries...)
}

// AddActivity prepends an audit entry.
func (s *AppState) AddActivity(e ActivityLogEntry) {
	s.ActivityLog = append([]ActivityLogEntry{e}, s.ActivityLog...)
}

func find[T any](items []T, match func(T) bool) (T, bool) {
	idx := slices.IndexFunc(items, match)
	if idx < 0 {
		var zero T

		return zero, false
	}

	return items[idx], true
}

func upsert[T any](items []T, item T, match func(T) bool) []T {
	idx := slices.IndexFunc(items, match)
	if idx < 0 {
		return append(slices.Clip(items), item)
	}

	return replaceAt(items, idx, item)
}

func replaceAt[T any](items []T, idx int, item T) []T {
	out := slices.Clone(items)
	out[idx] = item

	return out
}

func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}

	return items
}
