// internal/console/actions.go
//
// 主選單 1~5 的實作。

package console

import (
	"errors"
	"fmt"

	"grievance/internal/complaint"
)

func (c *Console) addComplaint() error {
	c.banner("ADD NEW COMPLAINT")

	var in complaint.NewComplaint
	var err error

	for {
		if in.ID, err = c.prompt("Enter Complaint ID: "); err != nil {
			return err
		}
		if in.ID == "" {
			c.warnf("[WARNING] Complaint ID cannot be empty. Please try again.")
			continue
		}
		if c.store.IsDuplicateID(in.ID) {
			c.warnf("[WARNING] This Complaint ID already exists. Please use a different ID.")
			continue
		}
		break
	}

	for {
		if in.CitizenName, err = c.prompt("Enter Citizen Name: "); err != nil {
			return err
		}
		if in.CitizenName != "" {
			break
		}
		c.warnf("[WARNING] Citizen Name cannot be empty. Please try again.")
	}

	for {
		if in.MobileNumber, err = c.prompt("Enter Mobile Number (10 digits): "); err != nil {
			return err
		}
		if complaint.ValidateMobile(in.MobileNumber) {
			break
		}
		c.warnf("[WARNING] Invalid mobile number. Please enter exactly 10 digits.")
	}

	cats := complaint.Categories()
	labels := make([]string, len(cats))
	for i, cat := range cats {
		labels[i] = string(cat)
	}
	idx, err := c.choose("\nComplaint Types:", fmt.Sprintf("Select Complaint Type (1-%d): ", len(labels)), labels)
	if err != nil {
		return err
	}
	in.Category = cats[idx]

	if in.Category == complaint.CategoryOthers {
		for {
			if in.OtherDetails, err = c.prompt("Describe your complaint: "); err != nil {
				return err
			}
			if in.OtherDetails != "" {
				break
			}
			c.warnf("[WARNING] Please describe your complaint.")
		}
	}

	added, err := c.store.Add(in)
	var saveErr *complaint.SaveError
	switch {
	case err == nil:
		c.okf("\n[OK] Complaint added successfully!")
		fmt.Fprintf(c.out, "  Complaint ID: %s\n", added.ID)
		fmt.Fprintf(c.out, "  Status: %s\n", added.Status)
	case errors.As(err, &saveErr):
		c.warnf("\n[WARNING] Complaint added but could not save to file.")
	default:
		c.warnf("\n[WARNING] Complaint was not added: %v", err)
	}
	return c.pause()
}

func (c *Console) viewAll() error {
	c.banner("ALL COMPLAINTS")

	list := c.store.List()
	if len(list) == 0 {
		fmt.Fprintln(c.out, "\nNo complaints found. The system is empty.")
		return c.pause()
	}
	fmt.Fprintf(c.out, "\nTotal Complaints: %d\n\n", len(list))
	for _, item := range list {
		fmt.Fprintln(c.out, item.Display())
	}
	return c.pause()
}

func (c *Console) updateStatus() error {
	c.banner("UPDATE COMPLAINT STATUS")

	if c.store.Len() == 0 {
		fmt.Fprintln(c.out, "\nNo complaints found. Please add a complaint first.")
		return c.pause()
	}

	id, err := c.prompt("\nEnter Complaint ID to update: ")
	if err != nil {
		return err
	}
	found, ok := c.store.FindByID(id)
	if !ok {
		c.warnf("\n[WARNING] Complaint with ID '%s' not found.", id)
		return c.pause()
	}

	fmt.Fprintf(c.out, "\nCurrent Status: %s\n", found.Status)
	statuses := complaint.Statuses()
	labels := make([]string, len(statuses))
	for i, st := range statuses {
		labels[i] = string(st)
	}
	idx, err := c.choose("\nAvailable Status Options:", fmt.Sprintf("\nSelect new status (1-%d): ", len(labels)), labels)
	if err != nil {
		return err
	}

	ch, err := c.store.UpdateStatus(id, statuses[idx])
	var saveErr *complaint.SaveError
	switch {
	case err == nil:
		c.okf("\n[OK] Status updated successfully!")
		fmt.Fprintf(c.out, "  Complaint ID: %s\n", ch.ID)
		fmt.Fprintf(c.out, "  Old Status: %s\n", ch.Old)
		fmt.Fprintf(c.out, "  New Status: %s\n", ch.New)
	case errors.As(err, &saveErr):
		c.warnf("\n[WARNING] Status updated but could not save to file.")
	default:
		c.warnf("\n[WARNING] Status was not updated: %v", err)
	}
	return c.pause()
}

func (c *Console) search() error {
	c.banner("SEARCH COMPLAINT")

	if c.store.Len() == 0 {
		fmt.Fprintln(c.out, "\nNo complaints found. The system is empty.")
		return c.pause()
	}

	id, err := c.prompt("\nEnter Complaint ID to search: ")
	if err != nil {
		return err
	}
	if found, ok := c.store.FindByID(id); ok {
		c.okf("\n[OK] Complaint Found:")
		fmt.Fprintln(c.out, found.Display())
	} else {
		c.warnf("\n[WARNING] Complaint with ID '%s' not found.", id)
	}
	return c.pause()
}

func (c *Console) summary() error {
	c.banner("COMPLAINT STATUS SUMMARY")

	if c.store.Len() == 0 {
		fmt.Fprintln(c.out, "\nNo complaints found. The system is empty.")
		return c.pause()
	}
	WriteSummary(c.out, c.store.StatusTally())
	return c.pause()
}
