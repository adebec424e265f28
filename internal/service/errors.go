package service

import "errors"

var (
	ErrGameNotFound           = errors.New("game not found")
	ErrRecommendationNotFound = errors.New("recommendation not found")
	ErrOpinionNotFound        = errors.New("opinion not found")
	ErrUserNotFound           = errors.New("user not found")

	ErrNoSelectedGames = errors.New("no games selected")
	ErrInvalidOrdering = errors.New("invalid ordering")
	ErrInvalidOpinion  = errors.New("invalid opinion")

	ErrOpinionExists      = errors.New("opinion already exists")
	ErrUserExists         = errors.New("nickname or email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
