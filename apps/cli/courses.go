package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/feedaq/academy-go/core"
	"github.com/feedaq/academy-go/core/course"
)

func (cli *commandLine) browseCourses(ctx context.Context, args []string) error {
	coursesCmd := flag.NewFlagSet("courses", flag.ExitOnError)
	search := coursesCmd.String("search", "", "Filter by title or description.")
	pageNum := coursesCmd.Int("page", 1, "Page number.")
	if err := coursesCmd.Parse(args); err != nil {
		return err
	}

	page := core.NewPage()
	page.Offset = (*pageNum - 1) * page.Limit

	courses, err := cli.courses.Browse(ctx, course.Filter{Search: *search, SortKey: "courseTitle"}, &page)
	if err != nil {
		return err
	}

	for _, c := range courses {
		fmt.Printf("%4d  %-40s  %s  %dmin\n", c.ID, c.Title, c.Level, c.Duration)
	}
	fmt.Printf("page %d/%d (%d courses)\n", *pageNum, page.PageCount(), page.TotalCount)
	return nil
}

func (cli *commandLine) showCourse(ctx context.Context, args []string) error {
	courseCmd := flag.NewFlagSet("course", flag.ExitOnError)
	courseID := courseCmd.Int("id", 0, "The course id.")
	if err := courseCmd.Parse(args); err != nil {
		return err
	}
	if *courseID == 0 {
		courseCmd.Usage()
		return errHelp
	}

	session, err := cli.session()
	if err != nil {
		return err
	}

	c, err := cli.courses.Get(ctx, *courseID, session.UserID)
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s, %dmin)\n%s\n", c.Title, c.Level, c.Duration, c.Description)
	if c.Cost.Valid {
		fmt.Printf("cost: %d credits\n", c.Cost.Int)
	}
	for _, cc := range c.Content {
		fmt.Printf("  %2d. [%s] %s\n", cc.Seq, cc.Type, cc.Title)
	}
	fmt.Printf("progress: %d%%\n", c.Progress)
	return nil
}

func (cli *commandLine) myCourses(ctx context.Context, args []string) error {
	myCmd := flag.NewFlagSet("mycourses", flag.ExitOnError)
	search := myCmd.String("search", "", "Filter by title or description.")
	pageNum := myCmd.Int("page", 1, "Page number.")
	if err := myCmd.Parse(args); err != nil {
		return err
	}

	session, err := cli.session()
	if err != nil {
		return err
	}

	page := core.NewPage()
	page.Offset = (*pageNum - 1) * page.Limit

	courses, err := cli.courses.MyCourses(ctx, session.UserID, course.Filter{Search: *search}, &page)
	if err != nil {
		return err
	}

	for _, c := range courses {
		fmt.Printf("%4d  %-40s  %3d%%  %s\n", c.ID, c.Title, c.Progress, c.EnrollmentStatus(session.UserID))
	}

	stats := course.ComputeStats(session.UserID, courses)
	fmt.Printf("%d courses, %d completed, avg progress %d%%\n", stats.Total, stats.Completed, stats.AvgProgress)
	return nil
}

func (cli *commandLine) enroll(ctx context.Context, args []string, enroll bool) error {
	name := "enroll"
	if !enroll {
		name = "disroll"
	}
	cmd := flag.NewFlagSet(name, flag.ExitOnError)
	courseID := cmd.Int("course", 0, "The course id.")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *courseID == 0 {
		cmd.Usage()
		return errHelp
	}

	session, err := cli.session()
	if err != nil {
		return err
	}

	var c course.Course
	if enroll {
		c, err = cli.courses.Enroll(ctx, *courseID, session.UserID)
	} else {
		c, err = cli.courses.Disroll(ctx, *courseID, session.UserID)
	}
	if err != nil {
		return err
	}
	fmt.Printf("%s: %s\n", c.Title, c.EnrollmentStatus(session.UserID))
	return nil
}

func (cli *commandLine) saveProgress(ctx context.Context, args []string) error {
	progCmd := flag.NewFlagSet("progress", flag.ExitOnError)
	courseID := progCmd.Int("course", 0, "The course id.")
	contentID := progCmd.Int("content", 0, "The course content id.")
	done := progCmd.Bool("done", false, "Mark the content completed instead of in progress.")
	watch := progCmd.Int("watch", 0, "Watch time in seconds (videos).")
	if err := progCmd.Parse(args); err != nil {
		return err
	}
	if *courseID == 0 || *contentID == 0 {
		progCmd.Usage()
		return errHelp
	}

	session, err := cli.session()
	if err != nil {
		return err
	}

	status := course.StatusInProgress
	if *done {
		status = course.StatusCompleted
	}
	c, err := cli.courses.SaveContentProgress(ctx, course.ContentProgress{
		UserID:    session.UserID,
		CourseID:  *courseID,
		ContentID: *contentID,
		Status:    status,
		WatchTime: *watch,
	})
	if err != nil {
		return err
	}
	fmt.Printf("%s: %d%% complete\n", c.Title, c.Progress)
	return nil
}
