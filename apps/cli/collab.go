package main

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/feedaq/academy-go/core"
	"github.com/feedaq/academy-go/core/notification"
	"github.com/feedaq/academy-go/core/studygroup"
)

func (cli *commandLine) listNotifications(ctx context.Context, args []string) error {
	notifCmd := flag.NewFlagSet("notifications", flag.ExitOnError)
	all := notifCmd.Bool("all", false, "Include archived notifications.")
	if err := notifCmd.Parse(args); err != nil {
		return err
	}

	session, err := cli.session()
	if err != nil {
		return err
	}

	page := core.NewPage()
	items, err := cli.notifs.List(ctx, session.UserID, *all, &page)
	if err != nil {
		return err
	}

	for _, n := range items {
		marker := " "
		if !n.IsRead {
			marker = "*"
		}
		fmt.Printf("%s %4d  [%s]  %s\n", marker, n.ID, n.Kind, n.Title)
	}
	fmt.Printf("%d unread of %d\n", notification.UnreadCount(items), page.TotalCount)
	return nil
}

func (cli *commandLine) archiveNotifications(ctx context.Context, args []string) error {
	archiveCmd := flag.NewFlagSet("archive", flag.ExitOnError)
	idList := archiveCmd.String("id", "", "Comma-separated notification ids.")
	if err := archiveCmd.Parse(args); err != nil {
		return err
	}
	if *idList == "" {
		archiveCmd.Usage()
		return errHelp
	}

	var ids []int
	for _, s := range strings.Split(*idList, ",") {
		id, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("invalid notification id %q", s)
		}
		ids = append(ids, id)
	}

	session, err := cli.session()
	if err != nil {
		return err
	}

	remaining, err := cli.notifs.Archive(ctx, session.UserID, ids...)
	if err != nil {
		return err
	}
	fmt.Printf("Archived %d, %d remaining\n", len(ids), len(remaining))
	return nil
}

func (cli *commandLine) listGroups(ctx context.Context, args []string) error {
	groupsCmd := flag.NewFlagSet("groups", flag.ExitOnError)
	search := groupsCmd.String("search", "", "Filter by group name or description.")
	if err := groupsCmd.Parse(args); err != nil {
		return err
	}

	session, err := cli.session()
	if err != nil {
		return err
	}

	page := core.NewPage()
	groups, err := cli.groups.MyGroups(ctx, session.UserID, *search, &page)
	if err != nil {
		return err
	}

	for _, g := range groups {
		a := studygroup.ComputeAnalytics(g)
		role := studygroup.RoleOf(g, session.UserID)
		fmt.Printf("%4d  %-30s  %s  %d members, %d items, avg %d%%\n",
			g.ID, g.Name, role, a.MemberCount, a.ContentCount, a.AvgProgress)
	}
	return nil
}

func (cli *commandLine) inviteToRoom(ctx context.Context, args []string) error {
	inviteCmd := flag.NewFlagSet("invite", flag.ExitOnError)
	roomID := inviteCmd.Int("room", 0, "The course room id.")
	emails := inviteCmd.String("emails", "", "Comma-separated recipient emails.")
	if err := inviteCmd.Parse(args); err != nil {
		return err
	}
	if *roomID == 0 {
		inviteCmd.Usage()
		return errHelp
	}

	if _, err := cli.session(); err != nil {
		return err
	}

	members, err := cli.rooms.InviteMembers(ctx, *roomID, *emails)
	if err != nil {
		return err
	}
	fmt.Printf("Invites sent; room now has %d members\n", len(members))
	return nil
}
