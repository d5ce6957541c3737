package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"tienda-storefront/cart"
	"tienda-storefront/catalog"
	"tienda-storefront/config"
	"tienda-storefront/database"
	"tienda-storefront/notify"
	"tienda-storefront/session"
	"tienda-storefront/storage"

	"github.com/google/uuid"
)

func main() {
	// Load environment variables
	if err := config.LoadEnv(); err != nil {
		log.Fatal("Error loading .env file:", err)
	}

	// Validate critical environment variables
	if err := config.ValidateEnv(); err != nil {
		log.Fatal("Environment validation failed: ", err)
	}

	// Initialize database
	db, err := database.Connect()
	if err != nil {
		log.Fatal("Failed to open local store:", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Seed a starter catalog if this is the first run
	if err := database.SeedDefaultCatalog(db); err != nil {
		log.Printf("Warning: Could not seed default catalog: %v", err)
	}

	notifier := notify.NewCenter(notify.LogNotifier{})
	store := storage.NewGormStore(db)
	products := catalog.New(db)
	engine := cart.NewEngine(store, notifier)
	sessions := session.NewManager(store, engine, notifier)

	runShell(os.Stdin, products, engine, sessions)

	// Close database connection
	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("Error closing local store: %v", err)
		}
	}
}

// runShell reads storefront commands line by line until EOF or quit. It
// stands in for the UI layer, which is outside this core.
func runShell(in *os.File, products *catalog.Catalog, engine *cart.Engine, sessions *session.Manager) {
	fmt.Println("tienda storefront - type 'help' for commands")
	scanner := bufio.NewScanner(in)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "help":
			fmt.Println("commands: products, search <term>, categories, add <id>, inc <id>, dec <id>, remove <id>, cart, checkout, confirm, clear, login <email> [role], logout, quit")
		case "products":
			listProducts(products, "", "")
		case "search":
			listProducts(products, strings.Join(args, " "), "")
		case "categories":
			categories, err := products.Categories()
			if err != nil {
				log.Printf("Failed to list categories: %v", err)
				continue
			}
			for _, c := range categories {
				fmt.Printf("%s - %s\n", c.Name, c.Description)
			}
		case "add":
			id, ok := parseID(args)
			if !ok {
				continue
			}
			product, err := products.Get(id)
			if err != nil {
				log.Printf("Lookup failed: %v", err)
				continue
			}
			if err := engine.AddItem(product); err != nil {
				log.Printf("Add failed: %v", err)
			}
		case "inc", "dec":
			id, ok := parseID(args)
			if !ok {
				continue
			}
			delta := 1
			if cmd == "dec" {
				delta = -1
			}
			if err := engine.ChangeQuantity(id, delta); err != nil {
				log.Printf("Quantity change failed: %v", err)
			}
		case "remove":
			id, ok := parseID(args)
			if !ok {
				continue
			}
			if err := engine.RemoveItem(id); err != nil {
				log.Printf("Remove failed: %v", err)
			}
		case "cart":
			printCart(engine)
		case "checkout":
			if engine.ItemCount() == 0 {
				fmt.Println("cart is empty")
				continue
			}
			invoice := engine.PrepareInvoice()
			fmt.Printf("Invoice %s (%s)\n", invoice.Number, invoice.IssuedAt.Format("2006-01-02 15:04"))
			for _, line := range invoice.Lines {
				fmt.Printf("  %s x%d  %s\n", line.Name, line.Quantity, cart.FormatAmount(line.LineTotal()))
			}
			printSummary(invoice.Summary.Subtotal, invoice.Summary.Shipping, invoice.Summary.Tax, invoice.Summary.Total)
			fmt.Println("type 'confirm' to complete the purchase")
		case "confirm":
			if err := engine.ConfirmPurchase(); err != nil {
				log.Printf("Purchase failed: %v", err)
			}
		case "clear":
			if err := engine.Clear(); err != nil {
				log.Printf("Clear failed: %v", err)
			}
		case "login":
			if len(args) == 0 {
				fmt.Println("usage: login <email> [role]")
				continue
			}
			role := "customer"
			if len(args) > 1 {
				role = args[1]
			}
			token, err := session.GenerateToken(uuid.New(), args[0], role)
			if err != nil {
				log.Printf("Could not mint local token: %v", err)
				continue
			}
			if err := sessions.Login(token); err != nil {
				log.Printf("Login failed: %v", err)
			}
		case "logout":
			if err := sessions.Logout(); err != nil {
				log.Printf("Logout failed: %v", err)
			}
		case "quit", "exit":
			return
		default:
			fmt.Printf("unknown command %q, try 'help'\n", cmd)
		}
	}
}

func parseID(args []string) (uint, bool) {
	if len(args) == 0 {
		fmt.Println("product id required")
		return 0, false
	}
	id, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		fmt.Printf("invalid product id %q\n", args[0])
		return 0, false
	}
	return uint(id), true
}

func listProducts(products *catalog.Catalog, term, category string) {
	found, err := products.Search(term, category)
	if err != nil {
		log.Printf("Failed to list products: %v", err)
		return
	}
	if len(found) == 0 {
		fmt.Println("no products found")
		return
	}
	for _, p := range found {
		fmt.Printf("[%d] %s  %s  (%s, %d in stock)\n",
			p.ID, p.Name, cart.FormatAmount(p.Price), p.Category.Name, p.Stock)
	}
}

func printCart(engine *cart.Engine) {
	items := engine.Items()
	if len(items) == 0 {
		fmt.Println("cart is empty")
		return
	}
	for _, item := range items {
		fmt.Printf("[%d] %s x%d  %s\n",
			item.ProductID, item.Name, item.Quantity, cart.FormatAmount(item.LineTotal()))
	}
	s := engine.Summary()
	printSummary(s.Subtotal, s.Shipping, s.Tax, s.Total)
	fmt.Printf("%d item(s) in cart\n", engine.ItemCount())
}

func printSummary(subtotal, shipping, tax, total float64) {
	fmt.Printf("subtotal %s\n", cart.FormatAmount(subtotal))
	if shipping == 0 {
		fmt.Println("shipping free")
	} else {
		fmt.Printf("shipping %s\n", cart.FormatAmount(shipping))
	}
	fmt.Printf("tax      %s\n", cart.FormatAmount(tax))
	fmt.Printf("total    %s\n", cart.FormatAmount(total))
}
