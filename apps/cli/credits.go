package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/feedaq/academy-go/core"
	"github.com/feedaq/academy-go/core/interview"
)

func (cli *commandLine) showCredits(ctx context.Context) error {
	session, err := cli.session()
	if err != nil {
		return err
	}

	balance, err := cli.credits.Refresh(ctx, session.UserID)
	if err != nil {
		return err
	}
	fmt.Printf("Balance: %d credits\n", balance)

	txns, err := cli.credits.History(session.UserID)
	if err != nil {
		return err
	}
	for _, txn := range txns {
		fmt.Printf("  %s  %-7s %5d  %-9s  %s\n",
			txn.CreatedAt.Format("2006-01-02 15:04"), txn.Kind, txn.Amount, txn.State, txn.Reason)
	}
	return nil
}

func (cli *commandLine) listInterviews(ctx context.Context) error {
	session, err := cli.session()
	if err != nil {
		return err
	}

	page := core.NewPage()
	items, err := cli.ivs.List(ctx, session.UserID, &page)
	if err != nil {
		return err
	}
	for _, iv := range items {
		fmt.Printf("%4d  %-30s  %s  %s\n", iv.ID, iv.Topic, iv.ScheduledAt.Format(time.RFC822), iv.Status)
	}
	return nil
}

func (cli *commandLine) scheduleInterview(ctx context.Context, args []string) error {
	schedCmd := flag.NewFlagSet("schedule", flag.ExitOnError)
	topic := schedCmd.String("topic", "", "The interview topic.")
	at := schedCmd.String("at", "", "The slot in RFC3339, e.g. 2026-09-15T14:00:00Z.")
	if err := schedCmd.Parse(args); err != nil {
		return err
	}
	if *topic == "" || *at == "" {
		schedCmd.Usage()
		return errHelp
	}

	slot, err := time.Parse(time.RFC3339, *at)
	if err != nil {
		return fmt.Errorf("invalid slot time %q: %v", *at, err)
	}

	session, err := cli.session()
	if err != nil {
		return err
	}
	if _, err = cli.credits.Refresh(ctx, session.UserID); err != nil {
		return err
	}

	iv, err := cli.ivs.Schedule(ctx, interview.ScheduleRequest{
		UserID:      session.UserID,
		Topic:       *topic,
		ScheduledAt: slot,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Scheduled interview %d (%s) for %s; %d credits left\n",
		iv.ID, iv.Topic, iv.ScheduledAt.Format(time.RFC822), cli.credits.Credits())
	return nil
}

func (cli *commandLine) counsellingHistory(ctx context.Context) error {
	session, err := cli.session()
	if err != nil {
		return err
	}

	page := core.NewPage()
	items, err := cli.ivs.CounsellingHistory(ctx, session.UserID, &page)
	if err != nil {
		return err
	}
	for _, cs := range items {
		fmt.Printf("%4d  %s  %-25s  %s\n",
			cs.ID, cs.HeldAt.Format("2006-01-02"), cs.CounsellorName, cs.Summary.String)
	}
	return nil
}
