// Package i18n holds the bot's interface strings for Uzbek, Russian, and
// English. Lookup falls back to the configured default language, then to the
// key itself so a missing translation is visible instead of silent.
package i18n

// DefaultLang is used when a dictionary or key is missing.
var DefaultLang = "uz"

var dictionaries = map[string]map[string]string{
	"uz": {
		"welcome":         "Assalomu alaykum! Sweet shop botga xush kelibsiz 🍰\nTilni tanlang / Tilni o'zgartirish: /lang",
		"choose_cat":      "Kategoriya tanlang:",
		"view_cart":       "Savatchani ko'rsatish 🛒",
		"checkout":        "Buyurtma berish ✅",
		"empty_cart":      "Savatcha bo'sh.",
		"added_cart":      "Mahsulot savatchaga qo'shildi.",
		"not_found":       "Mahsulot topilmadi.",
		"your_cart":       "Sizning savatcha:",
		"total":           "Jami",
		"price":           "Narx",
		"enter_name":      "Ismingizni kiriting / Введите имя / Enter your name:",
		"send_phone":      "Telefon raqamingizni yuboring:",
		"send_contact":    "Kontaktni yuborish",
		"enter_address":   "Manzilingizni kiriting (yetkazib berish uchun):",
		"choose_payment":  "To'lov usulini tanlang:",
		"pay_cash":        "Naqd pul",
		"pay_card":        "Karta (operator orqali)",
		"order_received":  "Buyurtmangiz qabul qilindi! Tez orada admin bilan bog'lanamiz.",
		"admin_notify":    "Yangi buyurtma:",
		"order_accepted":  "Sizning buyurtmangiz qabul qilindi. Status: accepted.",
		"order_shipped":   "Sizning buyurtmangiz jo'natildi. Status: shipped.",
		"order_canceled":  "Sizning buyurtmangiz bekor qilindi. Status: canceled.",
		"add_to_cart":     "Savatchaga qo'shish",
		"back":            "Orqaga",
		"main_menu":       "Bosh menyu",
		"cat_cakes":       "Tortlar 🎂",
		"cat_pastries":    "Pishiriqlar 🧁",
		"cat_desserts":    "Desertlar 🍮",
		"language_change": "Til / Tilni o'zgartirish",
		"checkout_not_started": "Buyurtma jarayoni boshlanmagan.",
		"order_not_found":      "Buyurtma topilmadi.",
		"only_admin":           "Faqat admin uchun.",
	},
	"ru": {
		"welcome":         "Здравствуйте! Добро пожаловать в Sweet shop bot 🍰\nВыберите язык: /lang",
		"choose_cat":      "Выберите категорию:",
		"view_cart":       "Показать корзину 🛒",
		"checkout":        "Оформить заказ ✅",
		"empty_cart":      "Корзина пуста.",
		"added_cart":      "Товар добавлен в корзину.",
		"not_found":       "Товар не найден.",
		"your_cart":       "Ваша корзина:",
		"total":           "Итого",
		"price":           "Цена",
		"enter_name":      "Ismingizni kiriting / Введите имя / Enter your name:",
		"send_phone":      "Отправьте номер телефона:",
		"send_contact":    "Отправить контакт",
		"enter_address":   "Введите адрес (для доставки):",
		"choose_payment":  "Выберите способ оплаты:",
		"pay_cash":        "Наличные",
		"pay_card":        "Карта",
		"order_received":  "Ваш заказ принят! Мы свяжемся с вами.",
		"admin_notify":    "Новый заказ:",
		"order_accepted":  "Ваш заказ принят. Статус: accepted.",
		"order_shipped":   "Ваш заказ отправлен. Статус: shipped.",
		"order_canceled":  "Ваш заказ отменён. Статус: canceled.",
		"add_to_cart":     "Добавить в корзину",
		"back":            "Назад",
		"main_menu":       "Главное меню",
		"cat_cakes":       "Торты 🎂",
		"cat_pastries":    "Выпечка 🧁",
		"cat_desserts":    "Десерты 🍮",
		"language_change": "Язык / Изменить",
		"checkout_not_started": "Оформление заказа не начато.",
		"order_not_found":      "Заказ не найден.",
		"only_admin":           "Только для администратора.",
	},
	"en": {
		"welcome":         "Hi! Welcome to Sweet shop bot 🍰\nChoose language: /lang",
		"choose_cat":      "Choose a category:",
		"view_cart":       "View cart 🛒",
		"checkout":        "Checkout ✅",
		"empty_cart":      "Cart is empty.",
		"added_cart":      "Product added to cart.",
		"not_found":       "Product not found.",
		"your_cart":       "Your cart:",
		"total":           "Total",
		"price":           "Price",
		"enter_name":      "Ismingizni kiriting / Введите имя / Enter your name:",
		"send_phone":      "Please send your phone number:",
		"send_contact":    "Send contact",
		"enter_address":   "Please enter your address (for delivery):",
		"choose_payment":  "Choose payment method:",
		"pay_cash":        "Cash",
		"pay_card":        "Card (via operator)",
		"order_received":  "Your order is received! We will contact you soon.",
		"admin_notify":    "New order:",
		"order_accepted":  "Your order has been accepted. Status: accepted.",
		"order_shipped":   "Your order has been shipped. Status: shipped.",
		"order_canceled":  "Your order has been canceled. Status: canceled.",
		"add_to_cart":     "Add to cart",
		"back":            "Back",
		"main_menu":       "Main menu",
		"cat_cakes":       "Cakes 🎂",
		"cat_pastries":    "Pastries 🧁",
		"cat_desserts":    "Desserts 🍮",
		"language_change": "Language / Change",
		"checkout_not_started": "Checkout flow not started.",
		"order_not_found":      "Order not found.",
		"only_admin":           "Only admin.",
	},
}

// LanguageNames labels the language picker buttons.
var LanguageNames = map[string]string{
	"uz": "🇺🇿 O‘zbekcha",
	"ru": "🇷🇺 Русский",
	"en": "🇺🇸 English",
}

// ChooseLanguagePrompt is shown in all languages at once.
const ChooseLanguagePrompt = "Tilni tanlang / Выберите язык / Choose language:"

// T returns the translation for key in lang, falling back to the default
// language, then to the key itself.
func T(lang, key string) string {
	if dict, ok := dictionaries[lang]; ok {
		if v, ok := dict[key]; ok {
			return v
		}
	}
	if dict, ok := dictionaries[DefaultLang]; ok {
		if v, ok := dict[key]; ok {
			return v
		}
	}
	return key
}

// Supported reports whether a language has a dictionary.
func Supported(lang string) bool {
	_, ok := dictionaries[lang]
	return ok
}
