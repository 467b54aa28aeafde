package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-gin-event-booking/internal/model"
	"go-gin-event-booking/internal/repository"
	apperrors "go-gin-event-booking/pkg/app_errors"
	"go-gin-event-booking/pkg/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// SeedCatalog 寫入示範活動與訂單，已存在的資料會略過
func SeedCatalog(ctx context.Context, pool *pgxpool.Pool) error {
	log := logger.WithComponent("seed")
	eventRepo := repository.NewEventRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)

	for _, event := range SampleEvents() {
		_, err := eventRepo.FindByID(ctx, event.ID)
		if err == nil {
			continue
		}
		if !errors.Is(err, apperrors.ErrEventNotFound) {
			return err
		}
		if _, err := eventRepo.Create(ctx, event); err != nil {
			return fmt.Errorf("seed event %q: %w", event.Title, err)
		}
		log.Info("event seeded", zap.String("title", event.Title), zap.String("id", event.ID.String()))
	}

	for _, booking := range SampleBookings() {
		_, err := bookingRepo.FindByReference(ctx, booking.Reference)
		if err == nil {
			continue
		}
		if !errors.Is(err, apperrors.ErrBookingNotFound) {
			return err
		}
		if _, err := bookingRepo.Create(ctx, booking); err != nil {
			return fmt.Errorf("seed booking %s: %w", booking.Reference, err)
		}
		log.Info("booking seeded", zap.String("reference", booking.Reference))
	}
	return nil
}

// 固定 id，重複執行 seed 時可以判斷活動是否已存在
var (
	SummerMusicFestivalID = uuid.MustParse("5b1f0c1e-8f3a-4c55-9a57-2d1f4a0b7c01")
	TechConferenceID      = uuid.MustParse("5b1f0c1e-8f3a-4c55-9a57-2d1f4a0b7c02")
	FoodWineFestivalID    = uuid.MustParse("5b1f0c1e-8f3a-4c55-9a57-2d1f4a0b7c03")
	ArtExhibitionID       = uuid.MustParse("5b1f0c1e-8f3a-4c55-9a57-2d1f4a0b7c04")
	MarathonCityRunID     = uuid.MustParse("5b1f0c1e-8f3a-4c55-9a57-2d1f4a0b7c05")
	ComedyNightID         = uuid.MustParse("5b1f0c1e-8f3a-4c55-9a57-2d1f4a0b7c06")
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func ticketTypes(eventID uuid.UUID, types ...model.TicketType) []model.TicketType {
	for i := range types {
		types[i].EventID = eventID
		types[i].Position = i
	}
	return types
}

// SampleEvents 前台的示範活動
func SampleEvents() []*model.Event {
	return []*model.Event{
		{
			ID:           SummerMusicFestivalID,
			Title:        "Summer Music Festival",
			Description:  "Experience three days of amazing live performances from top artists across multiple stages.",
			Category:     "Music",
			Date:         date(2023, time.June, 15),
			StartTime:    "12:00 PM",
			EndTime:      "11:00 PM",
			Location:     "Central Park, New York",
			Organizer:    "Melody Productions",
			BasePrice:    price("149.99"),
			TotalTickets: 2500,
			TicketTypes: ticketTypes(SummerMusicFestivalID,
				model.TicketType{ID: "general", Name: "General Admission", Price: price("149.99"), Description: "Access to all general venues and performances"},
				model.TicketType{ID: "vip", Name: "VIP Pass", Price: price("299.99"), Description: "Premium viewing areas, exclusive lounges, and complimentary refreshments"},
				model.TicketType{ID: "weekend", Name: "Weekend Pass", Price: price("399.99"), Description: "Full weekend access with camping option included"},
			),
		},
		{
			ID:           TechConferenceID,
			Title:        "Tech Conference 2023",
			Description:  "Join industry leaders and innovators for a two-day conference on the future of technology.",
			Category:     "Technology",
			Date:         date(2023, time.August, 10),
			StartTime:    "9:00 AM",
			EndTime:      "5:00 PM",
			Location:     "Convention Center, San Francisco",
			Organizer:    "FutureTech Inc.",
			BasePrice:    price("299.99"),
			TotalTickets: 1000,
			TicketTypes: ticketTypes(TechConferenceID,
				model.TicketType{ID: "standard", Name: "Standard Pass", Price: price("299.99"), Description: "Access to all sessions and exhibitions"},
				model.TicketType{ID: "premium", Name: "Premium Pass", Price: price("499.99"), Description: "Standard access plus workshop participation and exclusive networking events"},
				model.TicketType{ID: "executive", Name: "Executive Pass", Price: price("799.99"), Description: "All-inclusive access with private meetings with speakers and industry leaders"},
			),
		},
		{
			ID:           FoodWineFestivalID,
			Title:        "Food & Wine Festival",
			Description:  "Taste exceptional dishes and wines from renowned chefs and wineries around the world.",
			Category:     "Food",
			Date:         date(2023, time.September, 5),
			StartTime:    "11:00 AM",
			EndTime:      "9:00 PM",
			Location:     "Marina Bay, Singapore",
			Organizer:    "Global Culinary Arts",
			BasePrice:    price("89.99"),
			TotalTickets: 1500,
			TicketTypes: ticketTypes(FoodWineFestivalID,
				model.TicketType{ID: "tasting", Name: "Tasting Pass", Price: price("89.99"), Description: "Entry with 10 food and 5 wine tasting tokens"},
				model.TicketType{ID: "gourmet", Name: "Gourmet Pass", Price: price("149.99"), Description: "Entry with 20 food and 10 wine tasting tokens plus exclusive tastings"},
				model.TicketType{ID: "chefs-table", Name: "Chef's Table Experience", Price: price("249.99"), Description: "Limited seating at special chef-hosted dining experiences plus full festival access"},
			),
		},
		{
			ID:           ArtExhibitionID,
			Title:        "Art Exhibition: Modern Perspectives",
			Description:  "Explore contemporary works from emerging and established artists pushing boundaries.",
			Category:     "Art",
			Date:         date(2023, time.October, 22),
			StartTime:    "10:00 AM",
			EndTime:      "6:00 PM",
			Location:     "National Gallery, London",
			Organizer:    "Contemporary Art Foundation",
			BasePrice:    price("24.99"),
			TotalTickets: 800,
			TicketTypes: ticketTypes(ArtExhibitionID,
				model.TicketType{ID: "standard", Name: "Standard Entry", Price: price("24.99"), Description: "Exhibition access with digital program"},
				model.TicketType{ID: "premium", Name: "Premium Entry", Price: price("39.99"), Description: "Exhibition access with audio guide and exhibition catalog"},
				model.TicketType{ID: "guided", Name: "Guided Tour", Price: price("49.99"), Description: "Exhibition access with expert-led tour in small groups"},
			),
		},
		{
			ID:           MarathonCityRunID,
			Title:        "Marathon City Run",
			Description:  "Join thousands of runners in this scenic marathon through the heart of the city.",
			Category:     "Sports",
			Date:         date(2023, time.November, 12),
			StartTime:    "7:00 AM",
			EndTime:      "2:00 PM",
			Location:     "Downtown, Chicago",
			Organizer:    "Chicago Athletics Association",
			BasePrice:    price("75.00"),
			TotalTickets: 5000,
			TicketTypes: ticketTypes(MarathonCityRunID,
				model.TicketType{ID: "standard", Name: "Standard Entry", Price: price("75.00"), Description: "Race entry with timing chip, t-shirt, and finisher's medal"},
				model.TicketType{ID: "premium", Name: "Premium Package", Price: price("120.00"), Description: "Race entry with premium gear pack and priority starting position"},
				model.TicketType{ID: "charity", Name: "Charity Entry", Price: price("200.00"), Description: "Race entry with donation to local community programs and special recognition"},
			),
		},
		{
			ID:           ComedyNightID,
			Title:        "Comedy Night Special",
			Description:  "Laugh until your sides hurt with performances from top stand-up comedians.",
			Category:     "Entertainment",
			Date:         date(2023, time.December, 3),
			StartTime:    "8:00 PM",
			EndTime:      "11:00 PM",
			Location:     "Comedy Club, Los Angeles",
			Organizer:    "Laugh Factory Productions",
			BasePrice:    price("49.99"),
			TotalTickets: 200,
			TicketTypes: ticketTypes(ComedyNightID,
				model.TicketType{ID: "general", Name: "General Seating", Price: price("49.99"), Description: "Standard seating with one drink included"},
				model.TicketType{ID: "premium", Name: "Premium Seating", Price: price("79.99"), Description: "Front section seating with two drinks included"},
				model.TicketType{ID: "vip", Name: "VIP Experience", Price: price("129.99"), Description: "Best seats in the house, drink package, and meet & greet with performers"},
			),
		},
	}
}

// SampleBookings 主辦方報表的示範訂單
func SampleBookings() []*model.Booking {
	paid := func(ts time.Time) *time.Time { return &ts }

	mk := func(ref string, eventID uuid.UUID, ticketID, ticketName, unit string, qty int, status model.BookingStatus, name, email string, pay model.PaymentSnapshot, created time.Time) *model.Booking {
		u := price(unit)
		b := &model.Booking{
			ID:             uuid.NewSHA1(uuid.NameSpaceOID, []byte(ref)),
			Reference:      ref,
			EventID:        eventID,
			TicketTypeID:   ticketID,
			TicketTypeName: ticketName,
			UnitPrice:      u,
			Quantity:       qty,
			TotalPrice:     u.Mul(decimal.NewFromInt(int64(qty))),
			Status:         status,
			Payment:        pay,
			Customer:       model.Customer{Name: name, Email: email},
			CreatedAt:      created,
		}
		if status == model.BookingStatusPaid {
			b.PaidAt = paid(created)
		}
		return b
	}

	card := func(last4, holder string) model.PaymentSnapshot {
		return model.PaymentSnapshot{Method: model.PaymentMethodCreditCard, CardLast4: last4, CardHolder: holder}
	}

	return []*model.Booking{
		mk("BK12345678", TechConferenceID, "standard", "Standard Pass", "299.99", 2, model.BookingStatusPaid,
			"John Smith", "john.smith@example.com", card("4242", "John Smith"), time.Date(2023, time.July, 15, 10, 30, 0, 0, time.UTC)),
		mk("BK23456789", TechConferenceID, "premium", "Premium Pass", "499.99", 1, model.BookingStatusPaid,
			"Sarah Johnson", "sarah.j@example.com", model.PaymentSnapshot{Method: model.PaymentMethodUPI, UPIID: "sarah@okbank"}, time.Date(2023, time.July, 16, 14, 45, 0, 0, time.UTC)),
		mk("BK34567890", TechConferenceID, "executive", "Executive Pass", "799.99", 1, model.BookingStatusPending,
			"Michael Brown", "m.brown@example.com", model.PaymentSnapshot{Method: model.PaymentMethodNetBanking, BankID: "hdfc"}, time.Date(2023, time.July, 17, 9, 15, 0, 0, time.UTC)),
		mk("BK45678901", TechConferenceID, "standard", "Standard Pass", "299.99", 3, model.BookingStatusCancelled,
			"Emily Davis", "emily.d@example.com", card("1881", "Emily Davis"), time.Date(2023, time.July, 18, 16, 20, 0, 0, time.UTC)),
		mk("BK56789012", SummerMusicFestivalID, "vip", "VIP Pass", "299.99", 2, model.BookingStatusPaid,
			"David Wilson", "d.wilson@example.com", model.PaymentSnapshot{Method: model.PaymentMethodWallet, WalletProvider: "paytm", MobileLast4: "3210"}, time.Date(2023, time.May, 20, 11, 0, 0, 0, time.UTC)),
	}
}
