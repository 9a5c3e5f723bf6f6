package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	appModels "github.com/yigit/placementportal/internal/app/models"
	appRepos "github.com/yigit/placementportal/internal/app/repositories"
)

type sampleStudent struct {
	name, regNo, course, email string
}

var sampleStudents = []sampleStudent{
	{"A. Sharma", "21CS123", "CSE", "a.sharma@univ.edu"},
	{"B. Kumar", "21IT456", "IT", "b.kumar@univ.edu"},
	{"C. Rao", "21EC789", "ECE", "c.rao@univ.edu"},
	{"D. Patel", "21ME321", "ME", "d.patel@univ.edu"},
	{"E. Reddy", "21CE654", "CE", "e.reddy@univ.edu"},
	{"F. Thomas", "21CS678", "CSE", "f.thomas@univ.edu"},
	{"G. Roy", "21IT111", "IT", "g.roy@univ.edu"},
	{"H. Iyer", "21EC222", "ECE", "h.iyer@univ.edu"},
}

// Default accounts, one per login table. Passwords are stored as plain text.
const (
	DefaultFacultyUname = "faculty"
	DefaultStudentUname = "asharma"
	DefaultCompanyUname = "acme"
)

// CreateDefaultData inserts the sample students and one login per role.
// Rows that already exist are left alone, so running it twice is harmless.
func CreateDefaultData(ctx context.Context, repos *appRepos.Repositories, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (Students/Logins)...")
	var finalErr error // To collect potential errors without stopping the process

	created := 0
	for _, s := range sampleStudents {
		_, err := repos.StudentRepository.FindByRegistrationNo(ctx, s.regNo)
		if err == nil {
			continue
		}
		if !errors.Is(err, appRepos.ErrStudentNotFound) {
			lgr.Error().Err(err).Str("registrationNo", s.regNo).Msg("Error checking sample student")
			finalErr = errors.Join(finalErr, err)
			continue
		}

		name, regNo, course, email := s.name, s.regNo, s.course, s.email
		student := &appModels.Student{StudentProfile: appModels.StudentProfile{
			Name:           &name,
			RegistrationNo: &regNo,
			Course:         &course,
			Email:          &email,
		}}
		if err := repos.StudentRepository.Create(ctx, student); err != nil {
			lgr.Error().Err(err).Str("registrationNo", s.regNo).Msg("Error creating sample student")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		created++
	}
	lgr.Info().Int("created", created).Int("total", len(sampleStudents)).Msg("Sample students ensured")

	logins := repos.LoginRepository

	// --- Faculty login --- //
	if _, err := logins.FindFacultyByUname(ctx, DefaultFacultyUname); errors.Is(err, appRepos.ErrLoginNotFound) {
		err = logins.CreateFaculty(ctx, &appModels.FacultyLogin{Uname: DefaultFacultyUname, Password: "faculty123"})
		finalErr = errors.Join(finalErr, logResult(lgr, err, "faculty"))
	} else if err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	// --- Student login --- //
	if _, err := logins.FindStudentByUname(ctx, DefaultStudentUname); errors.Is(err, appRepos.ErrLoginNotFound) {
		err = logins.CreateStudent(ctx, &appModels.StudentLogin{
			Name:           "A. Sharma",
			Uname:          DefaultStudentUname,
			Password:       "student123",
			RegistrationNo: "21CS123",
		})
		finalErr = errors.Join(finalErr, logResult(lgr, err, "student"))
	} else if err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	// --- Company login --- //
	if _, err := logins.FindCompanyByUname(ctx, DefaultCompanyUname); errors.Is(err, appRepos.ErrLoginNotFound) {
		err = logins.CreateCompany(ctx, &appModels.CompanyLogin{Uname: DefaultCompanyUname, Password: "company123"})
		finalErr = errors.Join(finalErr, logResult(lgr, err, "company"))
	} else if err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	if finalErr != nil {
		lgr.Warn().Err(finalErr).Msg("Default data creation finished with errors")
	} else {
		lgr.Info().Msg("Default data ensured")
	}
	return finalErr
}

func logResult(lgr zerolog.Logger, err error, role string) error {
	if err != nil {
		lgr.Error().Err(err).Str("role", role).Msg("Error creating default login")
		return err
	}
	lgr.Info().Str("role", role).Msg("Default login created")
	return nil
}
