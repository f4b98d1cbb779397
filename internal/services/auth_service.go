package services

import (
	"github.com/terraincognita07/vital/internal/models"
)

type AuthUserRepository interface {
	ExistsByNormalizedEmail(email string) (bool, error)
	FindByNormalizedEmail(email string) (models.User, error)
	FindByID(userID uint) (models.User, error)
	Create(user *models.User) error
	Save(user *models.User) error
}

type AuthService struct {
	users AuthUserRepository
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users}
}

func (service *AuthService) RegistrationEmailExists(email string) (bool, error) {
	return service.users.ExistsByNormalizedEmail(email)
}

func (service *AuthService) CreateUser(user *models.User) error {
	return service.users.Create(user)
}

func (service *AuthService) FindByNormalizedEmail(email string) (models.User, error) {
	return service.users.FindByNormalizedEmail(email)
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	return service.users.FindByID(userID)
}

func (service *AuthService) SaveUser(user *models.User) error {
	return service.users.Save(user)
}

// TargetsForUser reads the evaluator goals off the profile; defaults cover
// users who never finished configuring one.
func TargetsForUser(user *models.User) Targets {
	if user == nil {
		return Targets{}.withDefaults()
	}
	return Targets{
		CalorieGoal:      user.CalorieGoal,
		SleepGoalMinutes: user.SleepGoalMinutes,
	}.withDefaults()
}
