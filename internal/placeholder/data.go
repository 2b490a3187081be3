package placeholder

import (
	"github.com/Jidetireni/invoice-dashboard/internal/dto"
	"github.com/google/uuid"
)

var (
	evilRabbit     = uuid.MustParse("d6e15727-9fe1-4961-8c5b-ea44a9bd81aa")
	delbaOliveira  = uuid.MustParse("3958dc9e-712f-4377-85e9-fec4b6a6442a")
	leeRobinson    = uuid.MustParse("3958dc9e-742f-4377-85e9-fec4b6a6442a")
	michaelNovotny = uuid.MustParse("76d65c26-f784-44a2-ac19-586678f7c2f2")
	amyBurns       = uuid.MustParse("cc27c14a-0acf-4f4a-a6c9-d45682c144b9")
	balazsOrban    = uuid.MustParse("13d07535-c59e-4157-a011-f8d2ef4e0cbb")
)

var Users = []dto.SeedUser{
	{
		ID:       uuid.MustParse("410544b2-4001-4271-9855-fec4b6a6442a"),
		Name:     "User",
		Email:    "user@nextmail.com",
		Password: "123456",
	},
}

var Customers = []dto.SeedCustomer{
	{ID: evilRabbit, Name: "Evil Rabbit", Email: "evil@rabbit.com", ImageURL: "/customers/evil-rabbit.png"},
	{ID: delbaOliveira, Name: "Delba de Oliveira", Email: "delba@oliveira.com", ImageURL: "/customers/delba-de-oliveira.png"},
	{ID: leeRobinson, Name: "Lee Robinson", Email: "lee@robinson.com", ImageURL: "/customers/lee-robinson.png"},
	{ID: michaelNovotny, Name: "Michael Novotny", Email: "michael@novotny.com", ImageURL: "/customers/michael-novotny.png"},
	{ID: amyBurns, Name: "Amy Burns", Email: "amy@burns.com", ImageURL: "/customers/amy-burns.png"},
	{ID: balazsOrban, Name: "Balazs Orban", Email: "balazs@orban.com", ImageURL: "/customers/balazs-orban.png"},
}

// Amounts are in cents.
var Invoices = []dto.SeedInvoice{
	{CustomerID: evilRabbit, Amount: 15795, Status: dto.InvoiceStatusPending, Date: "2022-12-06"},
	{CustomerID: delbaOliveira, Amount: 20348, Status: dto.InvoiceStatusPending, Date: "2022-11-14"},
	{CustomerID: amyBurns, Amount: 3040, Status: dto.InvoiceStatusPaid, Date: "2022-10-29"},
	{CustomerID: michaelNovotny, Amount: 44800, Status: dto.InvoiceStatusPaid, Date: "2023-09-10"},
	{CustomerID: balazsOrban, Amount: 34577, Status: dto.InvoiceStatusPending, Date: "2023-08-05"},
	{CustomerID: leeRobinson, Amount: 54246, Status: dto.InvoiceStatusPending, Date: "2023-07-16"},
	{CustomerID: evilRabbit, Amount: 666, Status: dto.InvoiceStatusPending, Date: "2023-06-27"},
	{CustomerID: michaelNovotny, Amount: 32545, Status: dto.InvoiceStatusPaid, Date: "2023-06-09"},
	{CustomerID: amyBurns, Amount: 1250, Status: dto.InvoiceStatusPaid, Date: "2023-06-17"},
	{CustomerID: balazsOrban, Amount: 8546, Status: dto.InvoiceStatusPaid, Date: "2023-06-07"},
	{CustomerID: delbaOliveira, Amount: 500, Status: dto.InvoiceStatusPaid, Date: "2023-08-19"},
	{CustomerID: balazsOrban, Amount: 8945, Status: dto.InvoiceStatusPaid, Date: "2023-06-03"},
	{CustomerID: leeRobinson, Amount: 1000, Status: dto.InvoiceStatusPaid, Date: "2022-06-05"},
}

var Revenue = []dto.SeedRevenue{
	{Month: "Jan", Revenue: 2000},
	{Month: "Feb", Revenue: 1800},
	{Month: "Mar", Revenue: 2200},
	{Month: "Apr", Revenue: 2500},
	{Month: "May", Revenue: 2300},
	{Month: "Jun", Revenue: 3200},
	{Month: "Jul", Revenue: 3500},
	{Month: "Aug", Revenue: 3700},
	{Month: "Sep", Revenue: 2500},
	{Month: "Oct", Revenue: 2800},
	{Month: "Nov", Revenue: 3000},
	{Month: "Dec", Revenue: 4800},
}

func Dataset() dto.Dataset {
	return dto.Dataset{
		Users:     Users,
		Customers: Customers,
		Invoices:  Invoices,
		Revenue:   Revenue,
	}
}
