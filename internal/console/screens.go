package console

import (
	"fmt"
	"strings"

	"github.com/klabast/wb-services/event-manager/internal/app"
)

type action struct {
	label string
	run   func(c *Console) error
}

type screen struct {
	title   string
	render  func(c *Console)
	actions []action
}

// screens in main menu order
var screens = []screen{
	{
		title: "Meeting Schedule & Agenda",
		render: func(c *Console) {
			c.list("Current Agenda:\n", c.state.Agenda())
		},
		actions: []action{
			{"Add agenda point", withField("Agenda Point", (*app.State).AddAgendaPoint)},
			{"Undo last", withNone((*app.State).UndoAgendaPoint)},
			{"Search agenda", func(c *Console) error {
				point, err := c.ask("Search")
				if err != nil {
					return err
				}
				c.report(c.state.SearchAgenda(point), nil)
				return nil
			}},
		},
	},
	{
		title: "Principal Permission / Day Fixing",
		render: func(c *Console) {
			c.list("Pending Requests:\n", c.state.PendingRequests())
		},
		actions: []action{
			{"Add request", withField("Request", (*app.State).AddRequest)},
			{"Approve next", approveNext},
			{"Insert date", withField("Date (DD-MM-YYYY)", (*app.State).InsertDate)},
			{"Search date", func(c *Console) error {
				date, err := c.ask("Date (DD-MM-YYYY)")
				if err != nil {
					return err
				}
				c.report(c.state.SearchDate(date), nil)
				return nil
			}},
			{"View all dates", func(c *Console) error {
				dates := c.state.EventDates()
				if len(dates) == 0 {
					c.printf("[All Dates] No dates added yet.\n")
					return nil
				}
				c.printf("[All Dates]\n%s\n", strings.Join(dates, "\n"))
				return nil
			}},
		},
	},
	{
		title: "Notices & Announcements",
		render: func(c *Console) {
			c.list("Announcements:", c.state.Announcements())
			c.bullets("\nResponsibilities:", ": ", c.state.Responsibilities())
		},
		actions: []action{
			{"Add announcement", withField("Message", (*app.State).AddAnnouncement)},
			{"Remove announcement", withField("Message", (*app.State).RemoveAnnouncement)},
			{"Assign responsibility", withPair("Member", "Task", (*app.State).AssignResponsibility)},
		},
	},
	{
		title: "Needs for Execution",
		render: func(c *Console) {
			c.list("Logistics Items:", c.state.Items())
			c.bullets("\nVendor Mappings:", " -> ", c.state.Vendors())
		},
		actions: []action{
			{"Add item", withField("Item", (*app.State).AddItem)},
			{"Undo last", withNone((*app.State).UndoItem)},
			{"Map vendor", withPair("Item", "Vendor", (*app.State).MapVendor)},
		},
	},
	{
		title: "Rehearsal",
		render: func(c *Console) {
			queued := c.state.RehearsalQueue()
			lines := make([]string, 0, len(queued))
			for _, q := range queued {
				lines = append(lines, fmt.Sprintf("%s by %s", q.Key, q.Value))
			}
			c.list("Performance Queue:", lines)
			c.printf("\nEvent Flow (sorted):\n")
			for _, step := range c.state.FlowSteps() {
				c.printf("Step %d: %s\n", step.Step, step.Performance)
			}
		},
		actions: []action{
			{"Add performance", withPair("Performance", "Participant", (*app.State).AddPerformance)},
			{"Next performance", withNone((*app.State).NextPerformance)},
			{"Add flow step", withPair("Flow No", "Performance", (*app.State).AddFlowStep)},
			{"Search flow step", withField("Flow No", (*app.State).SearchFlowStep)},
		},
	},
	{
		title: "Execution Day",
		render: func(c *Console) {
			c.list("Performance Schedule:", c.state.Schedule())
			c.bullets("\nVolunteers:", ": ", c.state.Volunteers())
		},
		actions: []action{
			{"Add performance", withField("Performance", (*app.State).SchedulePerformance)},
			{"Next performance", withNone((*app.State).NextScheduled)},
			{"Delete performance", withField("Performance", (*app.State).DeletePerformance)},
			{"Insert last-minute performance", withPair("New Performance", "Insert After", (*app.State).InsertPerformanceAfter)},
			{"Assign volunteer", withPair("Name", "Duty", (*app.State).AssignVolunteer)},
			{"Add feedback", withField("Rating (1-5)", (*app.State).AddFeedback)},
			{"View feedback", func(c *Console) error {
				c.report(c.state.FeedbackSummary(), nil)
				return nil
			}},
		},
	},
}

func withNone(op func(*app.State) (app.Notice, error)) func(*Console) error {
	return func(c *Console) error {
		c.report(op(c.state))
		return nil
	}
}

func withField(label string, op func(*app.State, string) (app.Notice, error)) func(*Console) error {
	return func(c *Console) error {
		value, err := c.ask(label)
		if err != nil {
			return err
		}
		c.report(op(c.state, value))
		return nil
	}
}

func withPair(first, second string, op func(*app.State, string, string) (app.Notice, error)) func(*Console) error {
	return func(c *Console) error {
		a, err := c.ask(first)
		if err != nil {
			return err
		}
		b, err := c.ask(second)
		if err != nil {
			return err
		}
		c.report(op(c.state, a, b))
		return nil
	}
}

// approveNext asks for the principal's sign-off when credentials are loaded
func approveNext(c *Console) error {
	var principal, password string
	if c.state.SignOffRequired() && len(c.state.PendingRequests()) > 0 {
		var err error
		if principal, err = c.ask("Principal"); err != nil {
			return err
		}
		if password, err = c.in.ReadPassword("Password: "); err != nil {
			return err
		}
	}
	c.report(c.state.ApproveNext(principal, password))
	return nil
}
