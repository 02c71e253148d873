package shell

import (
	"errors"
	"fmt"
	"io"

	"farekiosk/internal/config"
	"farekiosk/internal/domain"
	"farekiosk/internal/domain/models"
	"farekiosk/internal/services"

	log "github.com/sirupsen/logrus"
)

var countPrompts = []struct {
	category models.Category
	prompt   string
}{
	{models.Adult, "Adults: "},
	{models.Child, "Children: "},
	{models.Senior, "Seniors: "},
	{models.Student, "Students: "},
}

// Shell is the interactive kiosk session.
type Shell struct {
	out      io.Writer
	prompt   *Prompter
	render   *Renderer
	vouchers services.VoucherService
}

func New(in io.Reader, out io.Writer, kiosk config.KioskConfig, vouchers services.VoucherService) *Shell {
	return &Shell{
		out:      out,
		prompt:   NewPrompter(in, out),
		render:   NewRenderer(out, kiosk),
		vouchers: vouchers,
	}
}

// Run loops until the user declines another voucher or input ends.
func (s *Shell) Run() error {
	s.render.Welcome()
	for {
		again, err := s.issueOne()
		if errors.Is(err, ErrInputClosed) {
			break
		}
		if err != nil {
			return err
		}
		if !again {
			break
		}
	}
	fmt.Fprintln(s.out, "Thank you. Program ended.")
	return nil
}

// issueOne runs one pass of the menu. It reports whether the user wants another voucher.
func (s *Shell) issueOne() (bool, error) {
	s.render.StationBoard(domain.StationBoard())
	zones := domain.Zones()
	s.render.ZoneMenu(zones)

	lo, hi := domain.ZoneRange()
	start, err := s.prompt.IntInRange(fmt.Sprintf("Select START zone (%d-%d): ", lo, hi), lo, hi)
	if err != nil {
		return false, err
	}
	dest, err := s.prompt.IntInRange(fmt.Sprintf("Select DESTINATION zone (%d-%d): ", lo, hi), lo, hi)
	if err != nil {
		return false, err
	}

	fmt.Fprintln(s.out, "\nEnter number of travellers in each category:")
	counts := models.TravellerCounts{}
	for _, cp := range countPrompts {
		n, err := s.prompt.NonNegativeInt(cp.prompt, domain.MaxTravellersPerCategory)
		if err != nil {
			return false, err
		}
		counts[cp.category] = n
	}

	if counts.Total() == 0 {
		fmt.Fprintln(s.out, "You must have at least 1 traveller. Please try again.")
		return true, nil
	}

	v, err := s.vouchers.Issue(models.TripRequest{StartZone: start, DestZone: dest}, counts)
	if err != nil {
		if domain.IsValidation(err) {
			fmt.Fprintf(s.out, "%s. Please try again.\n", err)
			return true, nil
		}
		log.WithError(err).Error("voucher issue failed")
		return false, err
	}
	s.render.Voucher(v)

	return s.prompt.Confirm("\nIssue another voucher? (Y/N): ")
}
