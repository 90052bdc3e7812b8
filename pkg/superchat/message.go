package superchat

// Message is a single paid chat message as displayed in the chat window.
// Messages are display-only and never change after creation.
type Message struct {
	Username string
	Amount   string
	Content  string
	Class    Class
}

// WithDefaults fills an empty username, amount or unknown class with the placeholder values
func (m Message) WithDefaults() Message {
	if !m.Class.Valid() {
		m.Class = DefaultClass
	}
	if m.Username == "" {
		m.Username = DefaultUsername
	}
	if m.Amount == "" {
		m.Amount = DefaultAmount
	}
	return m
}

const loremIpsum = "Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod tempor " +
	"incididunt ut labore et dolore magna aliqua. Gravida dictum fusce ut placerat orci. " +
	"Nunc consequat interdum varius sit amet. Placerat vestibulum lectus mauris ultrices eros in cursus. " +
	"Viverra mauris in aliquam sem fringilla ut morbi tincidunt augue. Tempus quam pellentesque nec nam. " +
	"Adipiscing vitae proin sagittis nisl rhoncus mattis rhoncus urna. Platea dictumst vestibulum rhoncus est. " +
	"Sit amet risus nullam eget felis eget. Tortor id aliquet lectus proin nibh nisl condimentum id. " +
	"Vitae elementum curabitur vitae nunc sed velit dignissim. Tristique senectus et netus et. " +
	"Velit laoreet id donec ultrices tincidunt arcu non. Commodo quis imperdiet massa tincidunt nunc pulvinar sapien et. " +
	"Diam sollicitudin tempor id eu nisl."

// SampleMessages returns the messages shown in the chat window at startup
func SampleMessages() []Message {
	return []Message{
		{Content: "Message 1"},
		{Content: "Message 2", Class: ClassGreen},
		{Username: "Very long username like damn bro calm down its too long", Content: "Message 3", Class: ClassOrange},
		{Username: "Long Post", Content: loremIpsum, Class: ClassRed},
	}
}

// PlaceholderAccounts returns the account labels listed in the config window
func PlaceholderAccounts() []string {
	return []string{
		"YT Account 1",
		"YT Account 2",
		"Stream Elements Account 1",
		"Stream Labs Account 1",
	}
}

// PlaceholderVideos returns the video source labels listed in the config window
func PlaceholderVideos() []string {
	return []string{
		"Video 1",
		"Video 2",
		"Video 3 mbik1dnv5T8",
	}
}
