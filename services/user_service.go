package services

import (
	"backend/config"
	"backend/models"
)

func GetUserByID(userID uint) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

type ProfileUpdate struct {
	FullName      *string  `json:"full_name"`
	Age           *int     `json:"age"`
	Sex           *string  `json:"sex"`
	HeightCm      *float64 `json:"height_cm"`
	WeightKg      *float64 `json:"weight_kg"`
	ActivityLevel *string  `json:"activity_level"`
}

// UpdateProfile applies only the fields present in the request.
func UpdateProfile(userID uint, upd ProfileUpdate) (*models.User, error) {
	user, err := GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	if upd.FullName != nil {
		user.FullName = *upd.FullName
	}
	if upd.Age != nil {
		user.Age = *upd.Age
	}
	if upd.Sex != nil {
		user.Sex = *upd.Sex
	}
	if upd.HeightCm != nil {
		user.HeightCm = *upd.HeightCm
	}
	if upd.WeightKg != nil {
		user.WeightKg = *upd.WeightKg
	}
	if upd.ActivityLevel != nil {
		user.ActivityLevel = *upd.ActivityLevel
	}

	if err := config.DB.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}
