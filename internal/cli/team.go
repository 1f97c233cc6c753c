package cli

import (
	"context"
	"fmt"
)

// ShowTeam lists the open board's members.
func (a *App) ShowTeam(ctx context.Context) {
	if a.boardInfo == nil {
		fmt.Fprintln(a.out, "No board open")
		return
	}

	members, err := a.client.GetMembers(ctx, a.boardInfo.ID)
	if err != nil {
		a.fail("team", err)
		return
	}

	fmt.Fprintf(a.out, "Board %q - scrum master %s\n", a.boardInfo.Name, a.boardInfo.ScrumMaster)
	for _, m := range members {
		fmt.Fprintf(a.out, "  %d  %s <%s>\n", m.ID, m.Name, m.Email)
	}
}

// AddMember adds a member by id. Scrum master only.
func (a *App) AddMember(ctx context.Context, memberID int64) {
	if a.boardInfo == nil {
		fmt.Fprintln(a.out, "No board open")
		return
	}
	if !a.isScrumMaster() {
		fmt.Fprintln(a.out, "Only the scrum master can manage members")
		return
	}
	if memberID == 0 {
		fmt.Fprintln(a.out, "Usage: addmember <member id>")
		return
	}

	m, err := a.client.AddMember(ctx, a.boardInfo.ID, memberID)
	if err != nil {
		a.fail("add member", err)
		return
	}
	fmt.Fprintf(a.out, "Added %s to %q\n", m.Name, a.boardInfo.Name)
}

// RemoveMember removes a member by id. Scrum master only; the scrum
// master cannot remove themselves.
func (a *App) RemoveMember(ctx context.Context, memberID int64) {
	if a.boardInfo == nil {
		fmt.Fprintln(a.out, "No board open")
		return
	}
	if !a.isScrumMaster() {
		fmt.Fprintln(a.out, "Only the scrum master can manage members")
		return
	}
	if memberID == 0 {
		fmt.Fprintln(a.out, "Usage: removemember <member id>")
		return
	}
	if u := a.session.User(); u != nil && u.ID == memberID {
		fmt.Fprintln(a.out, "The scrum master cannot leave their own board")
		return
	}

	if err := a.client.RemoveMember(ctx, a.boardInfo.ID, memberID); err != nil {
		a.fail("remove member", err)
		return
	}
	fmt.Fprintf(a.out, "Removed member %d from %q\n", memberID, a.boardInfo.Name)
}
