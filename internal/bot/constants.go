package bot

// primaryColor is the embed accent color used across all bot responses.
const primaryColor = 0x4187EB

const (
	aboutTitle       = "About খেলিলি আইয়ুন"
	aboutDescription = "খেলিলি আইয়ুন is a discord bot created to work as a helping hand for CP communities\n" +
		"The name of the bot was inspired by মেজ্জান হাইলে আইয়ুন\n\n" +
		":point_right: Check out our GitHub repo [here](https://github.com/cuet-dev-corpse/khelile-ayyun)\n" +
		":construction: The bot is currently under construction. All features may not work properly"
	aboutFooter = "Made with 💖 by CUET Dev Corpse"
)

const (
	statusActivity = "Duel against Tourist"

	msgNotImplemented = "The feature is not implemented yet"
	msgNoAccount      = "I don't have an account"
	msgGenericFailure = "Something went wrong, please try again later"

	msgTournamentSizeHelp = "Number of players should be\n" +
		":point_right: an integer\n" +
		":point_right: a power of 2\n" +
		":point_right: between [8,128]"
)
