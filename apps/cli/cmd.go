package main

import (
	"context"
	"flag"
	"fmt"
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/feedaq/academy-go/core"
	"github.com/feedaq/academy-go/core/course"
	"github.com/feedaq/academy-go/core/credit"
	"github.com/feedaq/academy-go/core/interview"
	"github.com/feedaq/academy-go/core/notification"
	"github.com/feedaq/academy-go/core/room"
	"github.com/feedaq/academy-go/core/studygroup"
	"github.com/feedaq/academy-go/core/user"
	"github.com/feedaq/academy-go/core/workspace"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	conf   *core.Config
	logger core.Logger

	users   *user.Service
	courses *course.Service
	rooms   *room.Service
	groups  *studygroup.Service
	notifs  *notification.Service
	credits *credit.Service
	ws      *workspace.Service
	ivs     *interview.Service
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  login -email EMAIL                       - log in (password prompted)")
	fmt.Println("  logout                                   - clear the stored session")
	fmt.Println("  whoami                                   - show the logged-in user")
	fmt.Println("  courses [-search TEXT] [-page N]         - browse the catalog")
	fmt.Println("  course -id ID                            - show one course with content")
	fmt.Println("  mycourses [-search TEXT] [-page N]       - list enrolled courses with progress")
	fmt.Println("  enroll -course ID                        - enroll in a course")
	fmt.Println("  disroll -course ID                       - drop a course")
	fmt.Println("  progress -course ID -content ID [-done]  - save content progress")
	fmt.Println("  notifications [-all]                     - list notifications")
	fmt.Println("  archive -id ID[,ID...]                   - archive notifications")
	fmt.Println("  groups [-search TEXT]                    - list my study groups")
	fmt.Println("  invite -room ID -emails \"a@x.com, ...\"   - invite to a course room")
	fmt.Println("  credits                                  - show credit balance and history")
	fmt.Println("  interviews                               - list mock interviews")
	fmt.Println("  schedule -topic T -at RFC3339            - schedule a mock interview")
	fmt.Println("  counselling                              - list counselling history")
	fmt.Println("  org [-set ORG_ID]                        - show or switch the active org")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	ctx := context.Background()

	switch args[1] {
	case "login":
		return cli.login(ctx, args[2:])
	case "logout":
		return cli.users.Logout()
	case "whoami":
		return cli.whoami(ctx)
	case "courses":
		return cli.browseCourses(ctx, args[2:])
	case "course":
		return cli.showCourse(ctx, args[2:])
	case "mycourses":
		return cli.myCourses(ctx, args[2:])
	case "enroll":
		return cli.enroll(ctx, args[2:], true)
	case "disroll":
		return cli.enroll(ctx, args[2:], false)
	case "progress":
		return cli.saveProgress(ctx, args[2:])
	case "notifications":
		return cli.listNotifications(ctx, args[2:])
	case "archive":
		return cli.archiveNotifications(ctx, args[2:])
	case "groups":
		return cli.listGroups(ctx, args[2:])
	case "invite":
		return cli.inviteToRoom(ctx, args[2:])
	case "credits":
		return cli.showCredits(ctx)
	case "interviews":
		return cli.listInterviews(ctx)
	case "schedule":
		return cli.scheduleInterview(ctx, args[2:])
	case "counselling":
		return cli.counsellingHistory(ctx)
	case "org":
		return cli.org(args[2:])
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) login(ctx context.Context, args []string) error {
	loginCmd := flag.NewFlagSet("login", flag.ExitOnError)
	email := loginCmd.String("email", "", "The account email. The password will be prompted next.")
	if err := loginCmd.Parse(args); err != nil {
		return err
	}
	if *email == "" {
		loginCmd.Usage()
		return errHelp
	}

	fmt.Print("Enter password:")
	pwd, err := readPasswordFunc(syscall.Stdin)
	fmt.Println()
	if err != nil {
		return err
	}
	if len(pwd) == 0 {
		loginCmd.Usage()
		return errHelp
	}

	session, err := cli.users.Login(ctx, *email, string(pwd))
	if err != nil {
		return err
	}
	fmt.Printf("Logged in as %s (user %d)\n", session.Email, session.UserID)
	return nil
}

func (cli *commandLine) whoami(ctx context.Context) error {
	if _, err := cli.users.Restore(); err != nil {
		return err
	}
	usr, err := cli.users.Me(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%s <%s>  roles: %v\n", usr.Name, usr.Email, usr.Roles)
	return nil
}

// session restores the persisted session for commands that need auth.
func (cli *commandLine) session() (user.Session, error) {
	return cli.users.Restore()
}

func (cli *commandLine) org(args []string) error {
	orgCmd := flag.NewFlagSet("org", flag.ExitOnError)
	set := orgCmd.String("set", "", "The organization id to activate.")
	if err := orgCmd.Parse(args); err != nil {
		return err
	}

	if *set != "" {
		if err := cli.ws.SwitchOrg(*set); err != nil {
			return err
		}
		fmt.Printf("Active org set to %s\n", *set)
		return nil
	}

	org, err := cli.ws.ActiveOrg()
	if err != nil {
		return err
	}
	fmt.Println(org)
	return nil
}
