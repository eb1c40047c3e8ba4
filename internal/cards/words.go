package cards

// DefaultCatalog is the built-in word-pair catalog. Pairs are close enough
// to keep discussion ambiguous but distinct enough to expose the imposter.
var DefaultCatalog = []WordPair{
	{"Coffee", "Tea"},
	{"Cat", "Dog"},
	{"Sun", "Moon"},
	{"Ocean", "Sea"},
	{"Mountain", "Hill"},
	{"River", "Stream"},
	{"Book", "Magazine"},
	{"Car", "Truck"},
	{"Pizza", "Burger"},
	{"Apple", "Orange"},
	{"Winter", "Autumn"},
	{"Guitar", "Piano"},
	{"Soccer", "Basketball"},
	{"Movie", "TV Show"},
	{"Rain", "Snow"},
	{"Lion", "Tiger"},
	{"Hotel", "Motel"},
	{"Ship", "Boat"},
	{"Forest", "Jungle"},
	{"Lake", "Pond"},
	{"Bread", "Toast"},
	{"Juice", "Smoothie"},
	{"Doctor", "Nurse"},
	{"Teacher", "Professor"},
	{"Phone", "Tablet"},
	{"Laptop", "Desktop"},
	{"Watch", "Clock"},
	{"Shirt", "Blouse"},
	{"Shoes", "Boots"},
	{"Hat", "Cap"},
	{"Painting", "Drawing"},
	{"Park", "Garden"},
	{"Airport", "Station"},
	{"Restaurant", "Cafe"},
	{"Mall", "Market"},
	{"Beach", "Shore"},
	{"Valley", "Canyon"},
	{"Cloud", "Mist"},
	{"Thunder", "Lightning"},
	{"Sunrise", "Sunset"},
	{"Spring", "Summer"},
	{"Breakfast", "Brunch"},
	{"Dinner", "Supper"},
	{"Pen", "Pencil"},
	{"Paper", "Notebook"},
	{"Email", "Letter"},
	{"Photo", "Picture"},
	{"Song", "Music"},
	{"Dance", "Ballet"},
	{"Running", "Jogging"},
	{"Swimming", "Diving"},
	{"Bicycle", "Motorcycle"},
	{"Bus", "Train"},
	{"Plane", "Helicopter"},
	{"Rocket", "Spaceship"},
	{"Castle", "Palace"},
	{"Tower", "Building"},
	{"Bridge", "Tunnel"},
	{"Road", "Highway"},
	{"City", "Town"},
	{"Village", "Hamlet"},
	{"King", "Emperor"},
	{"Queen", "Princess"},
	{"Knight", "Warrior"},
	{"Wizard", "Sorcerer"},
	{"Dragon", "Dinosaur"},
	{"Eagle", "Hawk"},
	{"Whale", "Dolphin"},
	{"Shark", "Fish"},
	{"Snake", "Lizard"},
	{"Spider", "Insect"},
	{"Rose", "Tulip"},
	{"Tree", "Plant"},
	{"Grass", "Weed"},
	{"Diamond", "Crystal"},
	{"Gold", "Silver"},
	{"Ring", "Bracelet"},
	{"Necklace", "Chain"},
	{"Candle", "Lamp"},
	{"Fire", "Flame"},
	{"Ice", "Snow"},
	{"Desert", "Wasteland"},
	{"Island", "Peninsula"},
	{"Volcano", "Mountain"},
	{"Cave", "Cavern"},
	{"Treasure", "Jewel"},
	{"Pirate", "Sailor"},
	{"Hero", "Champion"},
	{"Villain", "Criminal"},
	{"Mystery", "Secret"},
	{"Adventure", "Journey"},
	{"Story", "Tale"},
	{"Legend", "Myth"},
	{"Ghost", "Spirit"},
	{"Angel", "Fairy"},
	{"Monster", "Creature"},
	{"Robot", "Android"},
	{"Alien", "Extraterrestrial"},
	{"Planet", "Star"},
	{"Galaxy", "Universe"},
	{"Comet", "Meteor"},
}
