package main

import (
	"fmt"
	"log"
	"os"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/feedaq/academy-go/core"
	"github.com/feedaq/academy-go/core/course"
	"github.com/feedaq/academy-go/core/credit"
	"github.com/feedaq/academy-go/core/interview"
	"github.com/feedaq/academy-go/core/notification"
	"github.com/feedaq/academy-go/core/room"
	"github.com/feedaq/academy-go/core/studygroup"
	"github.com/feedaq/academy-go/core/user"
	"github.com/feedaq/academy-go/core/workspace"
	"github.com/feedaq/academy-go/gateway/rest"
	logsvc "github.com/feedaq/academy-go/services/logger"
	"github.com/feedaq/academy-go/storage/state"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	logger := logsvc.NewRollbarLogger(
		log.New(os.Stderr, "CLI : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)

	stateDB, err := state.Open(conf)
	if err != nil {
		logger.Fatal(fmt.Sprintf("opening state database: %v", err), err)
	}
	defer func() {
		if err = stateDB.Close(); err != nil {
			logger.Error("failed to close state database", err)
		}
	}()

	validate := validator.New()
	translator := newTranslator()
	core.InitValidators(validate, translator)

	// the token source reads the user service set up right below
	var usrSvc *user.Service
	client := rest.NewClient(conf, logger, rest.TokenFunc(func() string {
		if usrSvc == nil {
			return ""
		}
		return usrSvc.Token()
	}))

	usrSvc = user.NewService(rest.NewUserRepository(client), stateDB, validate, logger)
	courseSvc := course.NewService(rest.NewCourseRepository(client), validate, logger)
	roomSvc := room.NewService(rest.NewRoomRepository(client), logger)
	groupSvc := studygroup.NewService(rest.NewStudyGroupRepository(client), validate, logger)
	notifSvc := notification.NewService(rest.NewNotificationRepository(client), logger)
	creditSvc := credit.NewService(rest.NewCreditRepository(client), stateDB, logger)
	wsSvc := workspace.NewService(rest.NewWorkspaceRepository(client), stateDB, validate, logger)
	ivSvc := interview.NewService(rest.NewInterviewRepository(client), creditSvc, conf, validate, logger)

	// =========================================================================
	// Run Command

	cli := &commandLine{
		conf:    conf,
		logger:  logger,
		users:   usrSvc,
		courses: courseSvc,
		rooms:   roomSvc,
		groups:  groupSvc,
		notifs:  notifSvc,
		credits: creditSvc,
		ws:      wsSvc,
		ivs:     ivSvc,
	}
	if err = cli.run(os.Args); err != nil {
		if err == errHelp {
			return
		}
		fmt.Fprintln(os.Stderr, core.ErrorMessage(err))
		os.Exit(1)
	}
}

func newTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}
