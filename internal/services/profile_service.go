package services

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ProfileStore persists anonymous user profiles. Missing records come back
// as (nil, nil).
type ProfileStore interface {
	InsertProfile(p *UserProfile) (*UserProfile, error)
	GetProfile(id string) (*UserProfile, error)
}

// ProfileInput mirrors the personal-info form.
type ProfileInput struct {
	Name       string `json:"name" validate:"required"`
	Age        int    `json:"age" validate:"min=1,max=120"`
	Gender     string `json:"gender" validate:"required,oneof=male female other"`
	Occupation string `json:"occupation" validate:"max=100"`
}

type ProfileService struct {
	store    ProfileStore
	validate *validator.Validate
	now      func() time.Time
	newID    func() string
}

func NewProfileService(store ProfileStore) *ProfileService {
	return &ProfileService{
		store:    store,
		validate: validator.New(),
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
	}
}

// CreateProfile validates the form input and persists a new profile.
func (s *ProfileService) CreateProfile(in ProfileInput) (*UserProfile, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Occupation = strings.TrimSpace(in.Occupation)

	if err := s.validate.Struct(in); err != nil {
		return nil, NewValidationError(profileValidationMessage(err))
	}

	now := s.now()
	profile := &UserProfile{
		ID:         s.newID(),
		Name:       in.Name,
		Age:        in.Age,
		Gender:     in.Gender,
		Occupation: in.Occupation,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return s.store.InsertProfile(profile)
}

// GetProfile fetches a profile by id.
func (s *ProfileService) GetProfile(id string) (*UserProfile, error) {
	if strings.TrimSpace(id) == "" {
		return nil, NewValidationError("缺少用戶資料編號")
	}
	profile, err := s.store.GetProfile(id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, NewNotFoundError("找不到用戶資料")
	}
	return profile, nil
}

func profileValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !asValidationErrors(err, &verrs) || len(verrs) == 0 {
		return "用戶資料錯誤"
	}
	switch verrs[0].Field() {
	case "Name":
		return "姓名不能為空"
	case "Age":
		return "年齡必須在1-120之間"
	case "Gender":
		return "請選擇性別"
	case "Occupation":
		return "職業欄位過長"
	default:
		return "用戶資料錯誤"
	}
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return false
	}
	*target = verrs
	return true
}
