package usecase

import (
	"github.com/mohamedtarek64/mohamed-elkenany-portfolio/internal/content"
	"github.com/mohamedtarek64/mohamed-elkenany-portfolio/internal/domain"
)

type contentUsecase struct{}

// NewContentUsecase serves the static portfolio content.
func NewContentUsecase() domain.ContentUsecase {
	return &contentUsecase{}
}

func (u *contentUsecase) Profile() domain.Profile         { return content.Profile }
func (u *contentUsecase) Skills() []domain.Skill          { return content.Skills }
func (u *contentUsecase) Projects() []domain.Project      { return content.Projects }
func (u *contentUsecase) Experience() []domain.Experience { return content.Experience }
func (u *contentUsecase) SocialLinks() []domain.SocialLink {
	return content.SocialLinks
}
